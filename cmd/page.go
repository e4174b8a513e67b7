package cmd

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/emrgen/wikt/internal/entry"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "dictionary entry commands",
}

func init() {
	pageCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	pageCmd.AddCommand(getPageCmd())
	pageCmd.AddCommand(prefixPageCmd())
	pageCmd.AddCommand(addPageCmd())
	pageCmd.AddCommand(deletePageCmd())
}

func getPageCmd() *cobra.Command {
	var title string
	var id int64

	command := &cobra.Command{
		Use:     "get",
		Short:   "get a page by title or id",
		Example: "wikt page get -t <title>\nwikt page get -i <id>",
		Run: func(cmd *cobra.Command, args []string) {
			if title == "" && id == 0 {
				color.Red("missing: --title or --id")
				return
			}

			ctx := context.Background()
			a, err := newReadyApp(ctx)
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			var page *entry.Page
			var ok bool
			if title != "" {
				page, ok, err = a.repository.GetByTitle(ctx, title)
			} else {
				page, ok, err = a.repository.GetByID(ctx, id)
			}
			if err != nil {
				logrus.Fatal(err)
			}
			if !ok {
				color.Yellow("page not found")
				return
			}

			printPage(page)
		},
	}

	command.Flags().StringVarP(&title, "title", "t", "", "page title")
	command.Flags().Int64VarP(&id, "id", "i", 0, "page id")
	command.Flags().SortFlags = false

	return command
}

func prefixPageCmd() *cobra.Command {
	var q entry.PrefixQuery

	command := &cobra.Command{
		Use:     "prefix [prefix]",
		Short:   "list pages whose title starts with a prefix",
		Example: "wikt page prefix S -l 5 --skip-redirects --lang en,ru --definition",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) > 0 {
				q.Prefix = args[0]
			}

			ctx := context.Background()
			a, err := newReadyApp(ctx)
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			pages, err := a.repository.GetByPrefix(ctx, q)
			if err != nil {
				logrus.Fatal(err)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Title", "Redirect", "Languages", "Meanings"})
			for _, page := range pages {
				target, _ := page.Redirect()
				langs := make([]string, 0, len(page.LangPOS))
				meanings := 0
				for _, lp := range page.LangPOS {
					langs = append(langs, lp.Lang+":"+lp.POS)
					meanings += len(lp.Meanings)
				}
				table.Append([]string{
					strconv.FormatInt(page.ID, 10),
					page.Title,
					target,
					strings.Join(langs, " "),
					strconv.Itoa(meanings),
				})
			}

			table.Render()
		},
	}

	command.Flags().IntVarP(&q.Limit, "limit", "l", 10, "max number of pages, negative for no limit")
	command.Flags().BoolVar(&q.SkipRedirects, "skip-redirects", false, "skip #REDIRECT pages")
	command.Flags().StringSliceVar(&q.SourceLanguages, "lang", nil, "keep pages with entries in these languages")
	command.Flags().StringSliceVar(&q.TranslationLanguages, "trans-lang", nil, "keep pages translated into these languages")
	command.Flags().BoolVar(&q.RequireDefinition, "definition", false, "keep pages with a definition")
	command.Flags().BoolVar(&q.RequireSemanticRelation, "relation", false, "keep pages with a semantic relation")
	command.Flags().SortFlags = false

	return command
}

func addPageCmd() *cobra.Command {
	var in entry.NewPageInput
	var redirect string

	var required = []string{"title"}

	command := &cobra.Command{
		Use:     "add",
		Short:   "add a page or update its in-wiktionary flag",
		Example: "wikt page add -t apple -w 120 -k 14 --in-wiktionary",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}
			if redirect != "" {
				in.RedirectTarget = &redirect
			}

			ctx := context.Background()
			a, err := newApp()
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			page, err := a.repository.GetOrInsert(ctx, in)
			if err != nil {
				logrus.Fatal(err)
			}

			logrus.Infof("page %q has id %d", page.Title, page.ID)
		},
	}

	command.Flags().StringVarP(&in.Title, "title", "t", "", "page title (required)")
	command.Flags().IntVarP(&in.WordCount, "word-count", "w", 0, "size of the page in words")
	command.Flags().IntVarP(&in.WikiLinkCount, "link-count", "k", 0, "number of wikified words")
	command.Flags().BoolVar(&in.InWiktionary, "in-wiktionary", true, "the title exists in Wiktionary")
	command.Flags().StringVarP(&redirect, "redirect", "r", "", "redirect target")
	command.Flags().SortFlags = false

	return command
}

func deletePageCmd() *cobra.Command {
	var title string

	var required = []string{"title"}

	command := &cobra.Command{
		Use:   "delete",
		Short: "delete a page with its language-POS data",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, required) {
				return
			}

			a, err := newApp()
			if err != nil {
				logrus.Fatal(err)
			}
			defer a.close()

			ok, err := a.repository.DeleteByTitle(context.Background(), title)
			if err != nil {
				logrus.Fatal(err)
			}
			if !ok {
				color.Yellow("page not found")
				return
			}

			logrus.Infof("page %q deleted", title)
		},
	}

	command.Flags().StringVarP(&title, "title", "t", "", "page title (required)")

	return command
}

func printPage(page *entry.Page) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Words", "Links", "In Wiktionary", "Redirect"})
	target, _ := page.Redirect()
	table.Append([]string{
		strconv.FormatInt(page.ID, 10),
		page.Title,
		strconv.Itoa(page.WordCount),
		strconv.Itoa(page.WikiLinkCount),
		strconv.FormatBool(page.InWiktionary),
		target,
	})
	table.Render()

	if len(page.LangPOS) == 0 {
		return
	}

	senses := tablewriter.NewWriter(os.Stdout)
	senses.SetHeader([]string{"Lang", "POS", "Definition", "Relations", "Translations"})
	senses.SetAutoWrapText(true)
	for _, lp := range page.LangPOS {
		for _, m := range lp.Meanings {
			relations := make([]string, 0, len(m.Relations))
			for _, r := range m.Relations {
				relations = append(relations, r.Kind.String()+": "+r.Target)
			}
			translations := make([]string, 0, len(m.Translations))
			for _, t := range m.Translations {
				translations = append(translations, t.Lang+": "+t.Text)
			}
			senses.Append([]string{lp.Lang, lp.POS, m.Definition, strings.Join(relations, "; "), strings.Join(translations, "; ")})
		}
	}
	senses.Render()
}
