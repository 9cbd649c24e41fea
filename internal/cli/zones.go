package cli

import (
	"tzconv/internal/platform/logger"
	pstrings "tzconv/internal/platform/strings"

	"github.com/spf13/cobra"
)

func (a *app) zonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones [filter]",
		Short: "List the timezone tokens tzconv understands",
		Long: `List every timezone token in the lookup table with its IANA zone and
current UTC offset. An optional filter keeps rows whose token or zone
contains it, e.g. "tzconv zones europe".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := pstrings.Deref(pstrings.At(args, 0))
			rows := a.svc.Zones(cmd.Context(), filter)
			logger.C(cmd.Context()).Debug().Int("rows", len(rows)).Msg("zones listed")
			a.out.Zones(rows, filter)
			return nil
		},
	}
}
