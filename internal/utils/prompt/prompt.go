// Package prompt faz a leitura e escrita no console, uma linha por vez.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/KromaEnergia/loja-cli/internal/utils"
)

// ErrEndOfInput indica que a entrada do console acabou. Só ReadLine o
// produz; um io.EOF vindo de outra camada (ex.: conexão com o banco) é erro.
var ErrEndOfInput = errors.New("end of input")

type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompt) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// ReadLine devolve a próxima linha sem o terminador. ErrEndOfInput só é
// retornado quando não há mais nada para ler.
func (p *Prompt) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "read console")
		}
		if line == "" {
			return "", ErrEndOfInput
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask mostra a pergunta e lê a resposta.
func (p *Prompt) Ask(question string) (string, error) {
	p.Println(question)
	return p.ReadLine()
}

// AskOr devolve fallback quando a resposta vem vazia ou a entrada acabou.
func (p *Prompt) AskOr(question, fallback string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil && !errors.Is(err, ErrEndOfInput) {
		return "", err
	}
	if utils.IsBlank(answer) {
		return fallback, nil
	}
	return answer, nil
}

// AskKeep é o AskOr da edição: só a linha vazia mantém current; espaços
// contam como valor novo.
func (p *Prompt) AskKeep(question, current string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil && !errors.Is(err, ErrEndOfInput) {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// AskInt lê um inteiro. Entrada mal formada retorna utils.ErrInvalidNumber.
func (p *Prompt) AskInt(question string) (int, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return 0, err
	}
	return utils.ParseID(answer)
}
