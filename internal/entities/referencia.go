package entities

// EntidadeRelacionada é uma referência fraca e tipada a um registro de outro
// subsistema (fiscalização, multa, recurso, CIP). Nunca é uma relação de
// posse: o ciclo de vida do protocolo independe da entidade referenciada e
// não há cascata em nenhuma direção.
type EntidadeRelacionada struct {
	Tipo string `db:"entidade_tipo" json:"tipo"`
	ID   string `db:"entidade_id" json:"id"`
}
