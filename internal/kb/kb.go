// Package kb holds the static device knowledge base: per-model manuals with
// LED semantics, button behaviors, and enumerated frequent problems with
// troubleshooting steps. It backs the get_problemas_frecuentes tool and the
// second-stage diagnosis contract.
package kb

import (
	"context"
	"strings"
)

// LED describes one indicator light on a device.
type LED struct {
	Name    string `json:"led" yaml:"led"`
	Color   string `json:"color" yaml:"color"`
	Meaning string `json:"significado" yaml:"significado"`
}

// Button describes one physical control on a device.
type Button struct {
	Name     string `json:"boton" yaml:"boton"`
	Behavior string `json:"comportamiento" yaml:"comportamiento"`
}

// Problem is one enumerated frequent problem with its remediation steps.
// Keywords are matched against the user's symptom summary.
type Problem struct {
	ID                  string   `json:"problemaId" yaml:"problemaId"`
	Symptom             string   `json:"sintoma" yaml:"sintoma"`
	Keywords            []string `json:"-" yaml:"palabrasClave"`
	Steps               []string `json:"pasos" yaml:"pasos"`
	FinalRecommendation string   `json:"recomendacionFinal" yaml:"recomendacionFinal"`
}

// Manual is the knowledge-base record for one device model.
type Manual struct {
	Model      string    `json:"modelo" yaml:"modelo"`
	DeviceType string    `json:"tipo" yaml:"tipo"`
	Brand      string    `json:"marca" yaml:"marca"`
	LEDs       []LED     `json:"leds" yaml:"leds"`
	Buttons    []Button  `json:"botones" yaml:"botones"`
	Problems   []Problem `json:"problemasFrecuentes" yaml:"problemasFrecuentes"`
}

// ProblemReport is the result shape of get_problemas_frecuentes. It always
// carries actionable steps: when the model/symptom pair has no KB match the
// report falls back to the generic power-and-cabling checklist.
type ProblemReport struct {
	Model               string   `json:"modelo"`
	Symptom             string   `json:"sintoma"`
	ProblemID           string   `json:"problemaId,omitempty"`
	Steps               []string `json:"pasos"`
	FinalRecommendation string   `json:"recomendacionFinal"`
}

// KnowledgeBase indexes manuals by model and answers symptom lookups.
type KnowledgeBase struct {
	manuals map[string]Manual
}

// New builds a knowledge base from a list of manuals.
func New(manuals []Manual) *KnowledgeBase {
	k := &KnowledgeBase{manuals: make(map[string]Manual, len(manuals))}
	for _, m := range manuals {
		k.manuals[normalizeModel(m.Model)] = m
	}
	return k
}

// ManualFor returns the manual for a device model, if the KB has one.
func (k *KnowledgeBase) ManualFor(model string) (Manual, bool) {
	m, ok := k.manuals[normalizeModel(model)]
	return m, ok
}

// ManualCount returns the number of indexed manuals.
func (k *KnowledgeBase) ManualCount() int {
	return len(k.manuals)
}

// FrequentProblems resolves the best-matching enumerated problem for a model
// and symptom summary. The context parameter keeps the signature uniform
// with the other lookup collaborators so a real datastore can slot in.
func (k *KnowledgeBase) FrequentProblems(_ context.Context, model, symptom string) ProblemReport {
	report := ProblemReport{Model: model, Symptom: symptom}

	if manual, ok := k.ManualFor(model); ok {
		if p, found := matchProblem(manual.Problems, symptom); found {
			report.ProblemID = p.ID
			report.Steps = p.Steps
			report.FinalRecommendation = p.FinalRecommendation
			return report
		}
	}

	report.Steps = genericSteps()
	report.FinalRecommendation = "Si después de estos pasos el problema continúa, es recomendable escalar el caso a soporte especializado."
	return report
}

func matchProblem(problems []Problem, symptom string) (Problem, bool) {
	needle := strings.ToLower(symptom)
	for _, p := range problems {
		for _, kw := range p.Keywords {
			if kw != "" && strings.Contains(needle, strings.ToLower(kw)) {
				return p, true
			}
		}
	}
	return Problem{}, false
}

func genericSteps() []string {
	return []string{
		"1. Verifica que el equipo esté encendido y conectado a la corriente.",
		"2. Revisa que el cable que llega al equipo esté bien conectado (fibra/coaxial/par de cobre).",
		"3. Apaga el equipo, espera 30 segundos y vuelve a encenderlo.",
	}
}

func normalizeModel(model string) string {
	return strings.ToUpper(strings.TrimSpace(model))
}
