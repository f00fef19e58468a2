package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	storePath string
	logPath   string
)

var sampleItems = []Item{
	{SKU: "ELEC-001", Name: "Wireless Mouse", Desc: "Ergonomic wireless mouse, 2.4GHz", Qty: 45, Price: 29.99, Location: "Warehouse A-1"},
	{SKU: "ELEC-002", Name: "USB-C Hub", Desc: "7-port USB-C hub with HDMI", Qty: 32, Price: 49.99, Location: "Warehouse A-1"},
	{SKU: "ELEC-003", Name: "Mechanical Keyboard", Desc: "RGB mechanical keyboard", Qty: 18, Price: 89.99, Location: "Warehouse A-2"},
	{SKU: "OFFC-001", Name: "Stapler", Desc: "Heavy-duty desktop stapler", Qty: 89, Price: 15.99, Location: "Warehouse C-1"},
	{SKU: "OFFC-002", Name: "Sticky Notes", Desc: "3x3 inch sticky notes, 12 pack", Qty: 200, Price: 8.99, Location: "Warehouse C-1"},
	{SKU: "FURN-001", Name: "Office Chair", Desc: "Ergonomic office chair", Qty: 15, Price: 249.99, Location: "Warehouse D-1"},
	{SKU: "SAFE-001", Name: "First Aid Kit", Desc: "100-piece first aid kit", Qty: 25, Price: 29.99, Location: "Warehouse F-1"},
}

// newLogger logs to a file: the terminal belongs to the panels.
func newLogger() (*logrus.Logger, error) {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(f)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

func main() {
	root := &cobra.Command{
		Use:   "inventory",
		Short: "3270-style inventory management",
		Long:  "A full-screen inventory manager in the IBM 3270 block-mode style.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := OpenStore(storePath)
			if err != nil {
				return err
			}
			log, err := newLogger()
			if err != nil {
				return err
			}
			app := &App{store: store, log: log}
			app.run()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&storePath, "store", "inventory.yaml", "item store file")
	root.PersistentFlags().StringVar(&logPath, "log", "inventory.log", "log file")

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Load sample items into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := OpenStore(storePath)
			if err != nil {
				return err
			}
			added := 0
			for _, it := range sampleItems {
				if _, ok := store.Find(it.SKU); ok {
					continue
				}
				store.Items = append(store.Items, it)
				added++
			}
			if err := store.Save(); err != nil {
				return err
			}
			fmt.Printf("seeded %d items\n", added)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Remove every item from the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := OpenStore(storePath)
			if err != nil {
				return err
			}
			n := len(store.Items)
			store.Items = nil
			if err := store.Save(); err != nil {
				return err
			}
			fmt.Printf("removed %d items\n", n)
			return nil
		},
	}

	root.AddCommand(seed, reset)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
