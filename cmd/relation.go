package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/emrgen/wikt/internal/relation"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var relationCmd = &cobra.Command{
	Use:   "relation",
	Short: "semantic relation vocabulary commands",
}

func init() {
	relationCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	relationCmd.AddCommand(reconcileRelationCmd())
	relationCmd.AddCommand(rebuildRelationCmd())
	relationCmd.AddCommand(listRelationCmd())
}

func reconcileRelationCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "reconcile",
		Short: "recreate the table relation_type from the relation kinds",
		Long: `delete all rows of relation_type and insert one row per relation kind,
sorted by name. Run it without other readers of the database.`,
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			if err := a.vocabulary.Reconcile(context.Background()); err != nil {
				logrus.Fatalf("reconcile relation_type: %v", err)
			}

			logrus.Infof("relation_type recreated with %d kinds", a.vocabulary.Len())
		},
	}

	return command
}

func rebuildRelationCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "rebuild",
		Short: "load relation_type and report drift from the relation kinds",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp()
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			if err := a.vocabulary.Rebuild(context.Background()); err != nil {
				logrus.Fatalf("rebuild vocabulary: %v", err)
			}

			if a.vocabulary.Drift() {
				color.Yellow("loaded %d of %d relation kinds", a.vocabulary.Len(), relation.Size())
				return
			}
			color.Green("loaded %d relation kinds", a.vocabulary.Len())
		},
	}

	return command
}

func listRelationCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "list relation kinds with their ids",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newReadyApp(context.Background())
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Relation"})
			for _, kind := range relation.AllKinds() {
				id, err := a.vocabulary.IDOf(kind)
				if err != nil {
					table.Append([]string{"-", kind.String()})
					continue
				}
				table.Append([]string{strconv.FormatInt(id, 10), kind.String()})
			}

			table.Render()
		},
	}

	return command
}
