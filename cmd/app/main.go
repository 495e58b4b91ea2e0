package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	adminservice "fleet-admin/internal/admin-service"
	"fleet-admin/internal/applog"
	"fleet-admin/internal/config"
)

func main() {
	adminCmd := flag.NewFlagSet("admin-service", flag.ExitOnError)
	port := adminCmd.String("port", "", "override ADMIN_SERVICE_PORT")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: app admin-service [-port N]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "admin-service":
		adminCmd.Parse(os.Args[2:])

		cfg, err := config.New()
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
		if *port != "" {
			cfg.Srv.AdminServicePort = *port
		}

		mylog, err := applog.New(cfg.Log.Level)
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}

		if err := adminservice.Execute(context.Background(), mylog, cfg); err != nil {
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "unknown service:", os.Args[1])
		os.Exit(1)
	}
}
