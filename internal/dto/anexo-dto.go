package dto

type AnexoDTO struct {
	ID              int64  `json:"id"`
	NumeroProtocolo string `json:"numero_protocolo"`
	NomeArquivo     string `json:"nome_arquivo"`
	ChaveBlob       string `json:"chave_blob"`
	MimeType        string `json:"mime_type"`
	TamanhoBytes    int64  `json:"tamanho_bytes"`
	SHA256          string `json:"sha256"`
	EnviadoPor      int64  `json:"enviado_por"`
	EnviadoEm       string `json:"enviado_em"`
	Descricao       string `json:"descricao,omitempty"`
}
