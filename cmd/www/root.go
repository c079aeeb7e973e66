package main

import (
	"github.com/spf13/cobra"

	"github.com/Lsnsh/www.rust-lang.org/internal/config"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

// localeFlags are the resource flags shared by serve and check. They
// override the environment configuration when set.
type localeFlags struct {
	dir           string
	defaultLocale string
}

func (f *localeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.dir, "locales-dir", "", "resource directory (default: embedded resources)")
	cmd.Flags().StringVar(&f.defaultLocale, "default-locale", "", "fallback locale (default: en-US)")
}

func (f *localeFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("locales-dir") {
		cfg.LocalesDir = f.dir
	}
	if cmd.Flags().Changed("default-locale") {
		cfg.DefaultLocale = l10n.Locale(f.defaultLocale)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "www",
		Short:         "Localized website server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newCheckCommand())
	return root
}
