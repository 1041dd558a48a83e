package seeders

type tipoDocumentoSeed struct {
	Nome              string
	PrazoRespostaDias int
	ExigeAssinatura   bool
}

type setorSeed struct {
	Nome           string
	Sigla          string
	PodeProtocolar bool
	PodeTramitar   bool
	EmailContato   string
}

// Prazos em dias corridos, conforme a rotina do órgão.
var tiposDocumentoData = []tipoDocumentoSeed{
	{Nome: "Reclamação", PrazoRespostaDias: 10},
	{Nome: "Auto de Infração", PrazoRespostaDias: 15, ExigeAssinatura: true},
	{Nome: "Denúncia", PrazoRespostaDias: 30},
	{Nome: "Recurso Administrativo", PrazoRespostaDias: 10},
	{Nome: "Petição", PrazoRespostaDias: 15},
	{Nome: "Ofício", PrazoRespostaDias: 5},
}

var setoresData = []setorSeed{
	{Nome: "Protocolo Geral", Sigla: "PROT", PodeProtocolar: true, PodeTramitar: true, EmailContato: "protocolo@procon.gov.br"},
	{Nome: "Assessoria Jurídica", Sigla: "JUR", PodeProtocolar: false, PodeTramitar: true, EmailContato: "juridico@procon.gov.br"},
	{Nome: "Diretoria de Fiscalização", Sigla: "FIS", PodeProtocolar: true, PodeTramitar: true, EmailContato: "fiscalizacao@procon.gov.br"},
	{Nome: "Diretoria Administrativa e Financeira", Sigla: "DAF", PodeProtocolar: false, PodeTramitar: true, EmailContato: "daf@procon.gov.br"},
	// Atendimento protocola reclamações presenciais mas não tramita processos.
	{Nome: "Atendimento ao Consumidor", Sigla: "ATD", PodeProtocolar: true, PodeTramitar: false, EmailContato: "atendimento@procon.gov.br"},
	{Nome: "Gabinete", Sigla: "GAB", PodeProtocolar: false, PodeTramitar: true, EmailContato: "gabinete@procon.gov.br"},
}
