package dto

// Sinais "entidade criada" entregues pelos subsistemas externos após o
// commit das suas próprias transações. O adaptador converte cada sinal em
// um protocolo novo; falhas aqui jamais afetam a transação de origem.

type SinalFiscalizacaoDTO struct {
	AutoID    string `json:"auto_id" validate:"required"`
	Empresa   string `json:"empresa" validate:"required"`
	CNPJ      string `json:"cnpj" validate:"required"`
	Descricao string `json:"descricao"`
	AtorID    int64  `json:"ator_id" validate:"required"`
}

type SinalMultaDTO struct {
	MultaID   string `json:"multa_id" validate:"required"`
	Empresa   string `json:"empresa" validate:"required"`
	Valor     string `json:"valor"`
	Descricao string `json:"descricao"`
	AtorID    int64  `json:"ator_id" validate:"required"`
}

type SinalRecursoDTO struct {
	RecursoID         string `json:"recurso_id" validate:"required"`
	ProcessoOriginal  string `json:"processo_original"`
	Recorrente        string `json:"recorrente" validate:"required"`
	Descricao         string `json:"descricao"`
	AtorID            int64  `json:"ator_id" validate:"required"`
}
