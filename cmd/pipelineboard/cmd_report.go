package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"pipelineboard/internal/board"
	"pipelineboard/internal/config"
	"pipelineboard/internal/goals"
	"pipelineboard/internal/util"
)

var (
	reportYears  string
	reportBrand  string
	reportRegion string
	reportClass  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the progress board summary",
	Long: `Prints the stage counts, regional goal progress, brand summary and
yearly sales of the house-brand stores in the local database.

Goals are read from the goals file configured in config.toml (data.goals_path).`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportYears, "years", "", "年份，逗号分隔；all 表示不限 (默认: 配置的默认年份)")
	reportCmd.Flags().StringVar(&reportBrand, "brand", "", "品牌")
	reportCmd.Flags().StringVar(&reportRegion, "region", "", "分区")
	reportCmd.Flags().StringVar(&reportClass, "class", "", "门店分类")
}

func runReport(cmd *cobra.Command, args []string) error {
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
	years := config.ParseYears(reportYears)
	if len(years) == 0 && reportYears != "all" {
		years = cfg.DefaultYears(now)
	}
	snap := board.Build(board.HouseStores(stores), goalStore.List(), board.Query{
		Years:  years,
		Brand:  reportBrand,
		Region: reportRegion,
		Class:  reportClass,
	}, cfg.CurrentYear(now))

	writeReport(cmd.OutOrStdout(), &snap)
	return nil
}

// writeReport 文本格式的看板摘要
func writeReport(w io.Writer, snap *board.Snapshot) {
	fmt.Fprintf(w, "Years: %s  Brand: %s  Region: %s\n\n",
		util.FormatYears(snap.Query.Years), util.OrDash(snap.Query.Brand), util.OrDash(snap.Query.Region))

	fmt.Fprintf(w, "Stores: %d  Open: %d  Pipeline: %d\n\n", snap.Total, snap.KPI.TotalOpen, snap.KPI.TotalPipeline)

	fmt.Fprintln(w, "Stages")
	for _, sc := range snap.Stages.Stages {
		fmt.Fprintf(w, "  %-16s %5d\n", sc.Stage, sc.Count)
	}
	if snap.Stages.Unclassified > 0 {
		fmt.Fprintf(w, "  %-16s %5d\n", "Unclassified", snap.Stages.Unclassified)
	}

	fmt.Fprintf(w, "\n%-16s %6s %6s %9s %8s\n", "Region", "Open", "Target", "Remaining", "Progress")
	for _, r := range snap.Regions {
		fmt.Fprintf(w, "%-16s %6d %6d %9d %8s\n", r.Region, r.OpenCount, r.Target, r.Remaining, util.FormatPercent(r.Progress))
	}

	fmt.Fprintf(w, "\n%-16s %6s %6s %8s\n", "Brand", "Open", "New", "Pipeline")
	for _, b := range snap.Brands {
		fmt.Fprintf(w, "%-16s %6d %6d %8d\n", b.Brand, b.Open, b.NewThisYear, b.Pipeline)
	}

	if len(snap.KPI.YearlySales) > 0 {
		currencies := make([]string, 0, len(snap.KPI.YearlySales))
		for c := range snap.KPI.YearlySales {
			currencies = append(currencies, c)
		}
		sort.Strings(currencies)
		fmt.Fprintf(w, "\nSales %d\n", snap.KPI.SalesYear)
		for _, c := range currencies {
			fmt.Fprintf(w, "  %s\n", util.FormatAmount(snap.KPI.YearlySales[c], c))
		}
	}
}
