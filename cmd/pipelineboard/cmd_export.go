package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pipelineboard/internal/board"
	"pipelineboard/internal/config"
	"pipelineboard/internal/exporter"
	"pipelineboard/internal/goals"
	"pipelineboard/internal/pipeline"
)

var (
	exportOutput string
	exportFilter listFlags
)

// listFlags 列表筛选与排序参数
type listFlags struct {
	brand  string
	stage  string
	region string
	class  string
	search string
	years  string
	sort   string
	desc   bool
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.brand, "brand", "", "品牌")
	cmd.Flags().StringVar(&f.stage, "stage", "", "阶段")
	cmd.Flags().StringVar(&f.region, "region", "", "分区")
	cmd.Flags().StringVar(&f.class, "class", "", "门店分类 (Type-based / Standalone)")
	cmd.Flags().StringVar(&f.search, "q", "", "关键字")
	cmd.Flags().StringVar(&f.years, "years", "", "年份，逗号分隔")
	cmd.Flags().StringVar(&f.sort, "sort", "", "排序列")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "降序")
}

func (f *listFlags) filter() pipeline.FilterSpec {
	return pipeline.FilterSpec{
		Brand:  f.brand,
		Stage:  f.stage,
		Region: f.region,
		Class:  f.class,
		Search: f.search,
		Years:  config.ParseYears(f.years),
	}
}

func (f *listFlags) sortSpec() (pipeline.SortSpec, error) {
	key, err := pipeline.ParseSortKey(f.sort)
	if err != nil || key == pipeline.SortNone {
		return pipeline.SortSpec{}, err
	}
	dir := pipeline.Asc
	if f.desc {
		dir = pipeline.Desc
	}
	return pipeline.SortSpec{Key: key, Dir: dir}, nil
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered store list and board summary to xlsx",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "输出文件 (默认 pipeline_YYYYMMDD.xlsx)")
	exportFilter.bind(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	spec, err := exportFilter.sortSpec()
	if err != nil {
		return err
	}
	filter := exportFilter.filter()

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	goalStore, err := goals.Preload(cfg.Data.GoalsPath)
	if err != nil {
		return err
	}

	stores, err := st.ListStores()
	if err != nil {
		return err
	}
	now := time.Now()
	years := filter.Years
	if len(years) == 0 {
		years = cfg.DefaultYears(now)
	}
	snap := board.Build(board.HouseStores(stores), goalStore.List(), board.Query{
		Years:  years,
		Brand:  filter.Brand,
		Region: filter.Region,
		Class:  filter.Class,
	}, cfg.CurrentYear(now))

	f, err := exporter.NewExporter().Export(exporter.ExportOptions{
		Stores:   pipeline.Apply(stores, filter, spec),
		Snapshot: &snap,
	})
	if err != nil {
		return err
	}
	defer f.Close()

	out := exportOutput
	if out == "" {
		out = fmt.Sprintf("pipeline_%s.xlsx", now.Format("20060102"))
	}
	if err := f.SaveAs(out); err != nil {
		return fmt.Errorf("failed to save %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)
	return nil
}
