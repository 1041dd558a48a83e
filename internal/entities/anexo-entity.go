package entities

import "time"

// Anexo guarda apenas metadados; o conteúdo vive no armazenamento externo,
// referenciado por ChaveBlob.
type Anexo struct {
	ID              int64     `db:"id" json:"id"`
	NumeroProtocolo string    `db:"numero_protocolo" json:"numero_protocolo"`
	NomeArquivo     string    `db:"nome_arquivo" json:"nome_arquivo"`
	ChaveBlob       string    `db:"chave_blob" json:"chave_blob"`
	MimeType        string    `db:"mime_type" json:"mime_type"`
	TamanhoBytes    int64     `db:"tamanho_bytes" json:"tamanho_bytes"`
	SHA256          string    `db:"sha256" json:"sha256"`
	EnviadoPor      int64     `db:"enviado_por" json:"enviado_por"`
	EnviadoEm       time.Time `db:"enviado_em" json:"enviado_em"`
	Descricao       string    `db:"descricao" json:"descricao"`
}
