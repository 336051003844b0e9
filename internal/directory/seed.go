package directory

// DefaultSeed returns the built-in demo directory used when no seed file is
// configured. Ten subscribers across the residential, PYME, and corporate
// segments, each with the devices installed on their account.
func DefaultSeed() []CustomerWithEquipment {
	return []CustomerWithEquipment{
		{
			Customer: Customer{ID: "cli-1", Name: "Karold Pérez", Document: "1026259098", AccountNumber: "1001", Segment: "Residencial"},
			Equipment: []Equipment{
				{ID: "eq-1", Type: "ONT", Model: "HG8145V5", Brand: "HUAWEI", Location: "Sala"},
				{ID: "eq-2", Type: "DECODER_IPTV", Model: "UIW4001", Brand: "ARRIS", Location: "Habitación principal"},
			},
		},
		{
			Customer: Customer{ID: "cli-2", Name: "Juan Rodríguez", Document: "51965155", AccountNumber: "1002", Segment: "Residencial"},
			Equipment: []Equipment{
				{ID: "eq-3", Type: "ROUTER", Model: "ARCHER C6", Brand: "TP-LINK", Location: "Estudio"},
			},
		},
		{
			Customer: Customer{ID: "cli-3", Name: "María Fernanda López", Document: "20067413", AccountNumber: "1003", Segment: "Residencial"},
			Equipment: []Equipment{
				{ID: "eq-4", Type: "MODEM_CABLE", Model: "TG2492", Brand: "TECHNICOLOR", Location: "Sala"},
				{ID: "eq-5", Type: "DECODER_CABLE", Model: "TVBOX HD", Brand: "GENÉRICO", Location: "Habitación"},
			},
		},
		{
			Customer: Customer{ID: "cli-4", Name: "Carlos Andrés Gómez", Document: "79254794", AccountNumber: "1004", Segment: "Residencial"},
			Equipment: []Equipment{
				{ID: "eq-6", Type: "ONT", Model: "ZXHN F660", Brand: "ZTE", Location: "Sala"},
			},
		},
		{
			Customer: Customer{ID: "cli-5", Name: "Ana Lucía Martínez", Document: "88812345", AccountNumber: "1005", Segment: "Residencial"},
			Equipment: []Equipment{
				{ID: "eq-7", Type: "CPE_LTE", Model: "B310", Brand: "HUAWEI", Location: "Oficina en casa"},
			},
		},
		{
			Customer: Customer{ID: "cli-6", Name: "Luis Felipe Rojas", Document: "1032456789", AccountNumber: "1006", Segment: "Residencial"},
			Equipment: []Equipment{
				{ID: "eq-8", Type: "ROUTER_WIFI_6", Model: "AX1800", Brand: "TP-LINK", Location: "Sala"},
			},
		},
		{
			Customer: Customer{ID: "cli-7", Name: "Sofía Ramírez", Document: "1098765432", AccountNumber: "1007", Segment: "Residencial"},
			Equipment: []Equipment{
				{ID: "eq-9", Type: "MESH_NODE", Model: "DECO M4", Brand: "TP-LINK", Location: "Pasillo"},
			},
		},
		{
			Customer: Customer{ID: "cli-8", Name: "Miguel Ángel Torres", Document: "79543210", AccountNumber: "1008", Segment: "PYME"},
			Equipment: []Equipment{
				{ID: "eq-10", Type: "SWITCH_POE", Model: "SG250-08HP", Brand: "CISCO", Location: "Cuarto de equipos"},
				{ID: "eq-11", Type: "ACCESS_POINT", Model: "UAP-AC-LR", Brand: "UBIQUITI", Location: "Recepción"},
			},
		},
		{
			Customer: Customer{ID: "cli-9", Name: "Laura Daniela Castillo", Document: "1122334455", AccountNumber: "1009", Segment: "PYME"},
			Equipment: []Equipment{
				{ID: "eq-12", Type: "FIREWALL", Model: "FORTIGATE 60E", Brand: "FORTINET", Location: "Rack principal"},
			},
		},
		{
			Customer: Customer{ID: "cli-10", Name: "Jorge Enrique Hernández", Document: "99887766", AccountNumber: "1010", Segment: "Corporativo"},
			Equipment: []Equipment{
				{ID: "eq-13", Type: "IAD", Model: "IAD 1230", Brand: "CISCO", Location: "Cuarto de equipos"},
				{ID: "eq-14", Type: "PHONE_IP", Model: "IP PHONE 7900", Brand: "CISCO", Location: "Gerencia"},
			},
		},
	}
}
