package cmd

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/gtcalc/calc"
)

// Tables prints the supported functions and unit suffixes.
type Tables struct {
	Format string `help:"Output format" enum:"text,json,yaml" default:"text" short:"o"`
}

// unitEntry is one row of the unit suffix table in machine-readable output.
type unitEntry struct {
	Name  string  `json:"name"  yaml:"name"`
	Scale float64 `json:"scale" yaml:"scale"`
}

// tableDump is the machine-readable form of the lookup tables.
type tableDump struct {
	Functions []string    `json:"functions" yaml:"functions"`
	Units     []unitEntry `json:"units"     yaml:"units"`
}

func dumpTables() tableDump {
	units := make([]unitEntry, 0)
	for name, scale := range calc.UnitTable() {
		units = append(units, unitEntry{Name: name, Scale: scale})
	}

	slices.SortFunc(units, func(a, b unitEntry) int {
		if c := cmp.Compare(a.Scale, b.Scale); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return tableDump{
		Functions: calc.FunctionNames(),
		Units:     units,
	}
}

// Run executes the tables command.
func (t *Tables) Run(ctx context.Context) error {
	dump := dumpTables()
	out := stdout(ctx)

	switch t.Format {
	case "json":
		data, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return ErrJSONMarshal.Wrap(err)
		}

		_, err = fmt.Fprintln(out, string(data))

		return err

	case "yaml":
		data, err := yaml.Marshal(dump)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = fmt.Fprint(out, string(data))

		return err

	default:
		fmt.Fprintln(out, "Functions:")
		fmt.Fprintf(out, "  %s\n", strings.Join(dump.Functions, " "))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Units:")

		for _, u := range dump.Units {
			fmt.Fprintf(out, "  %-4s = %s\n", u.Name, calc.FormatResult(u.Scale))
		}

		fmt.Fprintln(out)

		if scale, ok := calc.UnitScale("maxa"); ok {
			fmt.Fprintf(out,
				"Extended tiers: max<letter> scales max by 4 per step (maxa = %s)\n",
				calc.FormatResult(scale),
			)
		}

		return nil
	}
}
