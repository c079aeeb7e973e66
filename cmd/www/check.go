package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lsnsh/www.rust-lang.org/internal/config"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

func newCheckCommand() *cobra.Command {
	var flags localeFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate resources and report translation coverage",
		Long: "Loads every resource, builds the locale bundles and compares each locale\n" +
			"with the default one. Messages missing from the default locale are errors;\n" +
			"untranslated messages are reported for information.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)

			reg, err := l10n.Open(resources(cfg), l10n.WithDefaultLocale(cfg.DefaultLocale.String()))
			if err != nil {
				return err
			}
			return check(cmd, reg)
		},
	}

	flags.register(cmd)
	return cmd
}

// check prints the coverage report of reg and fails when a locale defines
// messages the default locale lacks.
func check(cmd *cobra.Command, reg *l10n.Registry) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	def := reg.DefaultLocale()

	var orphaned int
	for _, loc := range reg.Locales() {
		if loc == def {
			continue
		}
		for _, id := range reg.Orphaned(loc) {
			orphaned++
			fmt.Fprintf(errOut, "error: %s: message %q is not defined in %s\n", loc, id, def)
		}
		if ids := reg.Untranslated(loc); len(ids) > 0 {
			fmt.Fprintf(out, "info: %s: %d untranslated: %s\n", loc, len(ids), strings.Join(ids, ", "))
		}
	}

	fmt.Fprintf(out, "checked %d locales\n", len(reg.Locales()))
	if orphaned > 0 {
		return fmt.Errorf("%d messages missing from %s", orphaned, def)
	}
	return nil
}
