package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stock-tracker/internal/audit"
	"stock-tracker/internal/config"
	"stock-tracker/internal/models"
	"stock-tracker/internal/repository"
	"stock-tracker/internal/service"
)

var (
	fileFlag      string
	thresholdFlag int

	svc *service.StockService
)

var rootCmd = &cobra.Command{
	Use:   "stocktrack",
	Short: "Track stock levels with file-based persistence",
	Long: `stocktrack keeps a table of item names and quantities, persisted as a
pretty-printed JSON file. Mutating commands load the snapshot, apply the
change and save it back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		setupLogging(cfg)

		if fileFlag != "" {
			cfg.Snapshot.Path = fileFlag
		}
		if !cmd.Flags().Changed("threshold") {
			thresholdFlag = cfg.Stock.LowStockThreshold
		}

		svc, err = service.NewStockService(repository.NewSnapshotRepository(), service.ServiceConfig{
			SnapshotPath:      cfg.Snapshot.Path,
			LowStockThreshold: cfg.Stock.LowStockThreshold,
		})
		if err != nil {
			return err
		}

		return svc.Load("")
	},
}

var addCmd = &cobra.Command{
	Use:   "add <item> <qty>",
	Short: "Add quantity to an item's stock",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return &models.TypeError{Field: "qty", Expected: "an integer", Got: fmt.Sprintf("%q", args[1])}
		}

		logs := audit.NewLog()
		if err := svc.AddStock(&models.AdjustStockRequest{Item: args[0], Qty: qty}, logs); err != nil {
			return err
		}
		for _, entry := range logs.Entries() {
			fmt.Println(entry)
		}

		return svc.Save("")
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <item> <qty>",
	Short: "Remove quantity from an item's stock",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return &models.TypeError{Field: "qty", Expected: "an integer", Got: fmt.Sprintf("%q", args[1])}
		}

		if err := svc.RemoveStock(&models.AdjustStockRequest{Item: args[0], Qty: qty}); err != nil {
			return err
		}
		fmt.Printf("Removed %d of %s\n", qty, args[0])

		return svc.Save("")
	},
}

var getCmd = &cobra.Command{
	Use:   "get <item>",
	Short: "Show the current quantity of an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := svc.GetQuantity(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %d\n", args[0], qty)
		return nil
	},
}

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items with stock below the threshold",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items := svc.LowStockBelow(thresholdFlag)
		if len(items) == 0 {
			fmt.Println("No low stock items")
			return nil
		}
		for _, item := range items {
			fmt.Println(item)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full items report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print(svc.Report())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&fileFlag, "file", "", "snapshot file path (overrides INVENTORY_FILE)")
	lowCmd.Flags().IntVar(&thresholdFlag, "threshold", 5, "low stock threshold")

	rootCmd.AddCommand(addCmd, removeCmd, getCmd, lowCmd, reportCmd)
}
