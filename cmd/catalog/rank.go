package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/domain/matching"
	"rawasi_matching/internal/domain/wizard"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// projectFile is the YAML form of a project descriptor.
type projectFile struct {
	Name           string   `yaml:"name"`
	Type           string   `yaml:"type"`
	SizeSqm        float64  `yaml:"sizeSqm"`
	Location       string   `yaml:"location"`
	Budget         float64  `yaml:"budget"`
	TimelineMonths float64  `yaml:"timelineMonths"`
	Complexity     string   `yaml:"complexity"`
	TechNeeds      []string `yaml:"techNeeds"`
}

type rankOptions struct {
	projectPath string
	name        string
	sizeSqm     float64
	location    string
	budget      float64
	complexity  string
	tech        []string
	filterTech  string
	query       string
}

var rankOpts rankOptions

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the catalog for a project and print the result",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		project, err := rankOpts.project(cmd)
		if err != nil {
			return err
		}
		return runRank(ctx, cmd.OutOrStdout(), project, matching.Filter{Tech: rankOpts.filterTech, Query: rankOpts.query})
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	f := rankCmd.Flags()
	f.StringVarP(&rankOpts.projectPath, "project", "p", "", "project descriptor yaml file")
	f.StringVar(&rankOpts.name, "name", "", "project name")
	f.Float64Var(&rankOpts.sizeSqm, "size", 0, "size in square metres")
	f.StringVar(&rankOpts.location, "location", "", "project city")
	f.Float64Var(&rankOpts.budget, "budget", 0, "budget")
	f.StringVar(&rankOpts.complexity, "complexity", "", "low, medium or high")
	f.StringSliceVar(&rankOpts.tech, "tech", nil, "required tech tags")
	f.StringVar(&rankOpts.filterTech, "filter-tech", "", "only show providers listing this tag")
	f.StringVarP(&rankOpts.query, "query", "q", "", "only show providers whose name contains this")
	f.String("catalog-file", "", "provider catalog json (env CATALOG_FILE)")
	viper.BindPFlag("catalog-file", f.Lookup("catalog-file"))
}

// project starts from the wizard defaults, applies the yaml file and then
// any flag the caller set explicitly.
func (o rankOptions) project(cmd *cobra.Command) (entities.ProjectDescriptor, error) {
	p := wizard.DefaultDraft()
	if o.projectPath != "" {
		fromFile, err := loadProjectFile(o.projectPath)
		if err != nil {
			return entities.ProjectDescriptor{}, err
		}
		p = fromFile
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		p.Name = o.name
	}
	if flags.Changed("size") {
		p.SizeSqm = o.sizeSqm
	}
	if flags.Changed("location") {
		p.Location = o.location
	}
	if flags.Changed("budget") {
		p.Budget = o.budget
	}
	if flags.Changed("complexity") {
		p.Complexity = entities.Complexity(strings.ToLower(o.complexity))
	}
	if flags.Changed("tech") {
		p.TechNeeds = o.tech
	}
	if strings.TrimSpace(p.Name) == "" {
		p.Name = "CLI project"
	}
	if err := wizard.Validate(p); err != nil {
		return entities.ProjectDescriptor{}, err
	}
	return p, nil
}

func loadProjectFile(path string) (entities.ProjectDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.ProjectDescriptor{}, fmt.Errorf("read project: %w", err)
	}
	return parseProject(data)
}

// parseProject decodes a yaml project. Omitted fields keep the wizard
// defaults.
func parseProject(data []byte) (entities.ProjectDescriptor, error) {
	d := wizard.DefaultDraft()
	pf := projectFile{
		Name:           d.Name,
		Type:           string(d.Type),
		SizeSqm:        d.SizeSqm,
		Location:       d.Location,
		Budget:         d.Budget,
		TimelineMonths: d.TimelineMonths,
		Complexity:     string(d.Complexity),
		TechNeeds:      d.TechNeeds,
	}
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return entities.ProjectDescriptor{}, fmt.Errorf("decode project: %w", err)
	}
	return entities.ProjectDescriptor{
		Name:           pf.Name,
		Type:           entities.ProjectType(pf.Type),
		SizeSqm:        pf.SizeSqm,
		Location:       pf.Location,
		Budget:         pf.Budget,
		TimelineMonths: pf.TimelineMonths,
		Complexity:     entities.Complexity(strings.ToLower(pf.Complexity)),
		TechNeeds:      pf.TechNeeds,
	}, nil
}

func runRank(ctx context.Context, w io.Writer, project entities.ProjectDescriptor, filter matching.Filter) error {
	l := newLogger()
	defer func() { _ = l.Sync() }()

	providers, source, err := loadCatalog(ctx, l)
	if err != nil {
		return err
	}
	l.Debug("ranking", zap.String("source", source), zap.Int("providers", len(providers)))

	ranked := matching.Rank(providers, &project)
	renderRanking(w, project, source, filter.Apply(ranked), matching.Estimate(&project))
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderRanking(w io.Writer, project entities.ProjectDescriptor, source string, recs []matching.Recommendation, est matching.ProjectEstimate) {
	fmt.Fprintf(w, "%s: %.0f sqm in %s, budget %.0f (catalog: %s)\n", project.Name, project.SizeSqm, project.Location, project.Budget, source)
	fmt.Fprintf(w, "estimate: cost %d, %d months, risk %.2f\n", est.EstCost, est.EstTimeMonths, est.Risk)

	rows := make([][]string, 0, len(recs))
	for i, r := range recs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Provider.Name,
			r.Provider.Location,
			strconv.FormatFloat(r.Score, 'f', 4, 64),
			strconv.FormatFloat(r.EstCost, 'f', 0, 64),
			strings.Join(r.Provider.Tech, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "Provider", "Location", "Score", "Est. cost", "Tech").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}
