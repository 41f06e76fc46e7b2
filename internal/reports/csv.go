package reports

import (
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes every section present in rep, each preceded by a title
// line and a header row.
func WriteCSV(w io.Writer, rep Report) error {
	ew := &errWriter{w: w}

	if op := rep.Operational; op != nil {
		ew.line("Contratos por vencer")
		ew.line("Contrato,Inquilino,Inmueble,Vencimiento,Días restantes")
		for _, c := range op.ExpiringContracts {
			ew.printf("%s,%s,%s,%s,%d\n", csvEscape(c.ContractID), csvEscape(c.Tenant), csvEscape(c.Property), c.EndDate, c.DaysRemaining)
		}
		ew.line("")
		ew.line("Inventario de inmuebles")
		ew.line("ID,Dirección,Tipo,Estado,Alquiler")
		for _, p := range op.PropertyInventory {
			ew.printf("%d,%s,%s,%s,%d\n", p.ID, csvEscape(p.Address), csvEscape(p.Type), csvEscape(string(p.Status)), p.RentAmount)
		}
	}

	if fin := rep.Financial; fin != nil {
		if rep.Operational != nil {
			ew.line("")
		}
		ew.line("Morosidad")
		ew.line("Inquilino,Inmueble,Monto,Días de mora,Rango")
		for _, d := range fin.Delinquency {
			ew.printf("%s,%s,%d,%d,%s\n", csvEscape(d.Tenant), csvEscape(d.Property), d.Amount, d.DaysOverdue, csvEscape(string(d.Range)))
		}
		ew.line("")
		ew.line("Ingresos mensuales")
		ew.line("Mes,Recaudado,Pendiente,Comisión,Neto propietarios")
		for _, m := range fin.MonthlyIncome {
			ew.printf("%s,%d,%d,%d,%d\n", csvEscape(m.Month), m.Collected, m.Pending, m.Commission, m.NetOwners)
		}
	}

	return ew.err
}

// errWriter stops writing after the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

// csvEscape wraps a value in quotes if it contains commas or quotes.
func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
