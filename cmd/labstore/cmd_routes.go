package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/newtonbotics/labstore/app/routes"
	"github.com/newtonbotics/labstore/pkg/router"
	"github.com/newtonbotics/labstore/pkg/store"
)

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// No store round-trips happen during registration, so the
		// placeholder store is enough to build the route table.
		api, err := buildAPI(store.Unavailable{})
		if err != nil {
			return err
		}

		r := router.New()
		routes.RegisterAPI(r, api)

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		for _, rt := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Method, rt.Path, rt.Name)
		}
		return w.Flush()
	},
}
