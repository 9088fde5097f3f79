package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// BudgetMarkdown renders the full transaction table of a budget to markdown.
func BudgetMarkdown(b *budget.Budget) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget %s", b.Window()))
	doc.PlainText(fmt.Sprintf("Initial amount %s, final balance %s.", b.Initial(), b.FinalBalance()))
	doc.LF()

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Name", "Amount", "Balance"},
		Rows:   [][]string{},
	}
	for row := range b.Rows() {
		table.Rows = append(table.Rows, []string{
			row.On.String(),
			row.Name,
			row.Amount.String(),
			row.Balance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
