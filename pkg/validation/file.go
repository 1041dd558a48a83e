package validation

import (
	"fmt"
	"strings"

	"github.com/Stevensbe/system-procon-sub001/pkg/config"
	apperrors "github.com/Stevensbe/system-procon-sub001/pkg/errors"
)

// ValidarArquivo confere tamanho e tipo MIME de um anexo contra a
// configuração antes de qualquer gravação no armazenamento.
func ValidarArquivo(cfg config.UploadConfig, nome, mimeType string, tamanhoBytes int64) error {
	if nome == "" {
		return apperrors.NewInvalidInputError("o nome do arquivo é obrigatório")
	}
	if tamanhoBytes <= 0 {
		return apperrors.NewInvalidInputError("arquivo vazio: %s", nome)
	}
	if tamanhoBytes > cfg.MaxTamanhoBytes {
		return apperrors.NewInvalidInputError(
			"o arquivo %s excede o tamanho máximo de %d MB", nome, cfg.MaxTamanhoBytes/(1024*1024))
	}

	mime := strings.ToLower(strings.TrimSpace(mimeType))
	for _, aceito := range cfg.MimeTypesAceitos {
		if mime == strings.ToLower(aceito) {
			return nil
		}
	}
	return apperrors.NewInvalidInputError(
		"tipo de arquivo não aceito: %s (aceitos: %s)", mimeType, fmt.Sprint(cfg.MimeTypesAceitos))
}
