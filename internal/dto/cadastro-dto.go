package dto

import "github.com/aarondl/null/v8"

// --- Tipos de documento ---

type CriarTipoDocumentoDTO struct {
	Nome              string `json:"nome" validate:"required"`
	PrazoRespostaDias int    `json:"prazo_resposta_dias" validate:"required,gt=0"`
	ExigeAssinatura   bool   `json:"exige_assinatura"`
}

type AtualizarTipoDocumentoDTO struct {
	Nome              null.String `json:"nome,omitempty"`
	PrazoRespostaDias null.Int    `json:"prazo_resposta_dias,omitempty"`
	ExigeAssinatura   null.Bool   `json:"exige_assinatura,omitempty"`
	Ativo             null.Bool   `json:"ativo,omitempty"`
}

type TipoDocumentoDTO struct {
	ID                int64  `json:"id"`
	Nome              string `json:"nome"`
	PrazoRespostaDias int    `json:"prazo_resposta_dias"`
	ExigeAssinatura   bool   `json:"exige_assinatura"`
	Ativo             bool   `json:"ativo"`
}

// --- Setores ---

type CriarSetorDTO struct {
	Nome           string `json:"nome" validate:"required"`
	Sigla          string `json:"sigla" validate:"required,max=10"`
	PodeProtocolar bool   `json:"pode_protocolar"`
	PodeTramitar   bool   `json:"pode_tramitar"`
	ResponsavelID  *int64 `json:"responsavel_id,omitempty"`
	EmailContato   string `json:"email_contato" validate:"omitempty,email"`
}

type AtualizarSetorDTO struct {
	Nome           null.String `json:"nome,omitempty"`
	PodeProtocolar null.Bool   `json:"pode_protocolar,omitempty"`
	PodeTramitar   null.Bool   `json:"pode_tramitar,omitempty"`
	ResponsavelID  null.Int64  `json:"responsavel_id,omitempty"`
	EmailContato   null.String `json:"email_contato,omitempty"`
}

type SetorDTO struct {
	ID             int64  `json:"id"`
	Nome           string `json:"nome"`
	Sigla          string `json:"sigla"`
	PodeProtocolar bool   `json:"pode_protocolar"`
	PodeTramitar   bool   `json:"pode_tramitar"`
	ResponsavelID  *int64 `json:"responsavel_id,omitempty"`
	EmailContato   string `json:"email_contato,omitempty"`
}
