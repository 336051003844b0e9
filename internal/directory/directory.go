// Package directory provides read-only access to the customer and equipment
// records the support tools look up. The Store interface hides the backing
// data source so the in-memory seed can be replaced by a real datastore
// without touching the orchestration loop.
package directory

import "context"

// Customer is one subscriber record. The JSON field names are the wire
// contract consumed by the model prompts and must stay in Spanish.
type Customer struct {
	ID            string `json:"idCliente" yaml:"idCliente"`
	Name          string `json:"nombre" yaml:"nombre"`
	Document      string `json:"documento" yaml:"documento"`
	AccountNumber string `json:"numeroCuenta" yaml:"numeroCuenta"`
	Segment       string `json:"segmento" yaml:"segmento"`
}

// Equipment is one network device associated with a customer.
type Equipment struct {
	ID       string `json:"idEquipoCliente" yaml:"idEquipoCliente"`
	Type     string `json:"tipo" yaml:"tipo"`
	Model    string `json:"modelo" yaml:"modelo"`
	Brand    string `json:"marca" yaml:"marca"`
	Location string `json:"ubicacion" yaml:"ubicacion"`
}

// CustomerWithEquipment is the enriched record the customer lookup tools
// return: the customer merged with every device on their account.
type CustomerWithEquipment struct {
	Customer  `yaml:",inline"`
	Equipment []Equipment `json:"equipos" yaml:"equipos"`
}

// Store is the lookup capability the tools depend on. A nil customer (or an
// empty equipment slice) with a nil error means "no such record", which is
// semantically distinct from a lookup failure.
type Store interface {
	CustomerByDocument(ctx context.Context, document string) (*Customer, error)
	CustomerByAccount(ctx context.Context, account string) (*Customer, error)
	EquipmentByCustomer(ctx context.Context, customerID string) ([]Equipment, error)
}
