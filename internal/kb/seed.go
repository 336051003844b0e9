package kb

// DefaultManuals returns the built-in manuals used when no knowledge-base
// file is configured. They cover the device models present in the demo
// customer directory.
func DefaultManuals() []Manual {
	return []Manual{
		{
			Model: "HG8145V5", DeviceType: "ONT", Brand: "HUAWEI",
			LEDs: []LED{
				{Name: "POWER", Color: "verde fijo", Meaning: "El equipo está encendido y alimentado correctamente."},
				{Name: "PON", Color: "verde fijo", Meaning: "La sesión óptica está establecida con la central."},
				{Name: "LOS", Color: "rojo intermitente", Meaning: "No llega señal óptica: fibra desconectada, doblada o cortada."},
				{Name: "WLAN", Color: "verde intermitente", Meaning: "La red WiFi está activa y cursando tráfico."},
			},
			Buttons: []Button{
				{Name: "WLAN", Behavior: "Pulsación corta enciende o apaga la red WiFi."},
				{Name: "WPS", Behavior: "Pulsación corta inicia el emparejamiento WPS durante 2 minutos."},
				{Name: "RESET", Behavior: "Mantener 10 segundos restaura valores de fábrica; se pierde la configuración WiFi personalizada."},
			},
			Problems: []Problem{
				{
					ID:      "hg8145v5-los-rojo",
					Symptom: "Luz LOS en rojo, sin internet",
					Keywords: []string{"los", "luz roja", "roja", "sin señal"},
					Steps: []string{
						"1. Verifica que el cable de fibra (conector verde) esté firme en el puerto óptico.",
						"2. Revisa que la fibra no esté doblada en ángulos cerrados ni aplastada por muebles.",
						"3. Apaga la ONT, espera 30 segundos y vuelve a encenderla.",
						"4. Si el LED LOS sigue en rojo, el daño puede estar en la acometida externa.",
					},
					FinalRecommendation: "Si LOS continúa en rojo tras el reinicio, escala el caso para visita técnica: suele requerir revisión de la fibra externa.",
				},
				{
					ID:      "hg8145v5-wifi-lento",
					Symptom: "Internet lento por WiFi",
					Keywords: []string{"lento", "lenta", "intermitente", "velocidad"},
					Steps: []string{
						"1. Acerca el dispositivo de prueba a menos de 3 metros de la ONT.",
						"2. Compara la velocidad por cable ethernet para descartar la red WiFi.",
						"3. Cambia el canal WiFi desde la página de administración (192.168.1.1).",
						"4. Reinicia la ONT si lleva más de una semana encendida sin interrupción.",
					},
					FinalRecommendation: "Si por cable la velocidad es correcta, considera un nodo mesh para ampliar cobertura en lugar de escalar avería.",
				},
				{
					ID:      "hg8145v5-sin-internet",
					Symptom: "Sin internet con LEDs normales",
					Keywords: []string{"sin internet", "no navega", "no tengo internet"},
					Steps: []string{
						"1. Confirma que el LED PON esté en verde fijo y LOS apagado.",
						"2. Apaga la ONT, espera 30 segundos y vuelve a encenderla.",
						"3. Olvida y vuelve a conectar la red WiFi en el dispositivo afectado.",
					},
					FinalRecommendation: "Con PON en verde y sin navegación tras el reinicio, escala a soporte para revisión de aprovisionamiento.",
				},
			},
		},
		{
			Model: "UIW4001", DeviceType: "DECODER_IPTV", Brand: "ARRIS",
			LEDs: []LED{
				{Name: "POWER", Color: "blanco fijo", Meaning: "Decodificador encendido."},
				{Name: "POWER", Color: "rojo fijo", Meaning: "En reposo (standby) o sin señal de video."},
			},
			Buttons: []Button{
				{Name: "POWER", Behavior: "Enciende o pone en reposo el decodificador."},
				{Name: "RESET", Behavior: "Pulsación corta reinicia el sistema sin borrar configuración."},
			},
			Problems: []Problem{
				{
					ID:      "uiw4001-pantalla-negra",
					Symptom: "Pantalla negra o sin señal en el televisor",
					Keywords: []string{"pantalla negra", "sin señal", "no se ve", "sin imagen"},
					Steps: []string{
						"1. Verifica que el televisor esté en la entrada HDMI correcta.",
						"2. Reconecta el cable HDMI en ambos extremos.",
						"3. Desconecta el decodificador de la corriente por 30 segundos y vuelve a conectarlo.",
					},
					FinalRecommendation: "Si tras el reinicio sigue sin imagen, prueba otro puerto HDMI del televisor antes de escalar.",
				},
				{
					ID:      "uiw4001-congelado",
					Symptom: "Imagen congelada o pixelada",
					Keywords: []string{"congela", "congelada", "pixel", "se traba"},
					Steps: []string{
						"1. Comprueba en la ONT que el servicio de internet esté activo.",
						"2. Si el decodificador usa WiFi, acércalo al router o conéctalo por cable ethernet.",
						"3. Reinicia el decodificador desde el botón RESET.",
					},
					FinalRecommendation: "La congelación recurrente con cableado directo amerita revisión del puerto IPTV en la ONT.",
				},
			},
		},
		{
			Model: "ARCHER C6", DeviceType: "ROUTER", Brand: "TP-LINK",
			LEDs: []LED{
				{Name: "INTERNET", Color: "naranja", Meaning: "Hay enlace WAN pero sin salida a internet."},
				{Name: "INTERNET", Color: "verde", Meaning: "Conexión a internet operativa."},
			},
			Buttons: []Button{
				{Name: "WPS/WiFi", Behavior: "Pulsación corta activa WPS; mantener 2 segundos apaga la red WiFi."},
				{Name: "RESET", Behavior: "Mantener 6 segundos restaura valores de fábrica."},
			},
			Problems: []Problem{
				{
					ID:      "archerc6-internet-naranja",
					Symptom: "LED de internet en naranja",
					Keywords: []string{"naranja", "sin internet", "no navega"},
					Steps: []string{
						"1. Revisa que el cable WAN venga del equipo del operador (ONT o cablemódem) al puerto azul.",
						"2. Reinicia primero el equipo del operador y después el router.",
						"3. Verifica en otro dispositivo si el problema es general o de un solo equipo.",
					},
					FinalRecommendation: "Si el LED sigue naranja con el equipo del operador en verde, revisa la configuración WAN del router antes de escalar.",
				},
			},
		},
		{
			Model: "ZXHN F660", DeviceType: "ONT", Brand: "ZTE",
			LEDs: []LED{
				{Name: "PON", Color: "verde fijo", Meaning: "Registro óptico correcto."},
				{Name: "LOS", Color: "rojo intermitente", Meaning: "Pérdida de señal óptica."},
			},
			Buttons: []Button{
				{Name: "WLAN", Behavior: "Enciende o apaga la red WiFi."},
				{Name: "RESET", Behavior: "Mantener 10 segundos restaura valores de fábrica."},
			},
			Problems: []Problem{
				{
					ID:      "f660-los-rojo",
					Symptom: "Luz LOS roja, no hay servicio",
					Keywords: []string{"los", "roja", "sin señal"},
					Steps: []string{
						"1. Revisa el conector de fibra en la parte posterior del equipo.",
						"2. Verifica que la fibra no tenga dobleces pronunciados.",
						"3. Apaga el equipo 30 segundos y enciéndelo de nuevo.",
					},
					FinalRecommendation: "LOS en rojo persistente requiere visita técnica para medir potencia óptica.",
				},
			},
		},
		{
			Model: "TG2492", DeviceType: "MODEM_CABLE", Brand: "TECHNICOLOR",
			LEDs: []LED{
				{Name: "ONLINE", Color: "verde fijo", Meaning: "Cablemódem sincronizado con la red HFC."},
				{Name: "ONLINE", Color: "apagado", Meaning: "Sin sincronización: revisar el coaxial."},
			},
			Buttons: []Button{
				{Name: "WPS", Behavior: "Inicia el emparejamiento WPS."},
				{Name: "RESET", Behavior: "Mantener 10 segundos restaura valores de fábrica."},
			},
			Problems: []Problem{
				{
					ID:      "tg2492-sin-sincronia",
					Symptom: "Sin internet, LED online apagado",
					Keywords: []string{"online", "sin internet", "no sincroniza", "apagado"},
					Steps: []string{
						"1. Verifica que el cable coaxial esté enroscado firme en el equipo y en la toma.",
						"2. Retira divisores (splitters) innecesarios entre la toma y el cablemódem.",
						"3. Apaga el equipo 30 segundos y vuelve a encenderlo.",
					},
					FinalRecommendation: "Si no recupera sincronía, el nivel de señal coaxial debe medirse en sitio: escala a visita técnica.",
				},
			},
		},
	}
}
