package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ProximoNumero monta o próximo número de documento do dia: prefixo AAAAMMDD
// seguido de sequencial de 3 dígitos. Recebe o maior número já emitido com o
// prefixo de hoje (vazio quando é o primeiro do dia).
func ProximoNumero(hoje time.Time, ultimo string) string {
	prefixo := hoje.Format("20060102")

	seq := 1
	if strings.HasPrefix(ultimo, prefixo) && len(ultimo) == len(prefixo)+3 {
		if n, err := strconv.Atoi(ultimo[len(prefixo):]); err == nil {
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s%03d", prefixo, seq)
}

// proximoNumeroDocumento lê o maior número do dia dentro da transação que vai
// consumi-lo. Duas transações concorrentes ainda podem ler o mesmo máximo
// antes de qualquer commit; a janela é conhecida e está documentada no
// DESIGN.md. A unique constraint em numero faz a segunda falhar em vez de
// duplicar.
func proximoNumeroDocumento(tx *gorm.DB, tabela string) (string, error) {
	hoje := time.Now()
	prefixo := hoje.Format("20060102")

	var ultimo string
	row := tx.Raw(
		fmt.Sprintf("SELECT numero FROM %s WHERE numero LIKE ? ORDER BY numero DESC LIMIT 1", tabela),
		prefixo+"%",
	).Row()
	if err := row.Scan(&ultimo); err != nil {
		// sem documentos hoje: começa em 001
		ultimo = ""
	}

	return ProximoNumero(hoje, ultimo), nil
}

// NumeroParcela devolve o número do boleto para uma parcela. Parcelamento
// compartilha o número base com sufixo -NN; parcela única fica sem sufixo.
func NumeroParcela(base string, parcela, total int) string {
	if total <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%02d", base, parcela)
}
