package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/dashboard/api"
	"fleet-admin/internal/dashboard/paginate"
	"fleet-admin/internal/dashboard/session"
	"fleet-admin/internal/dashboard/store"
	"fleet-admin/internal/validation"
)

func main() {
	logger := &Logger{}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	base := os.Getenv("FLEET_ADMIN_URL")
	if base == "" {
		base = DefaultBaseURL
	}

	sess, err := session.New("")
	if err != nil {
		logger.Error("session store: %v", err)
		os.Exit(1)
	}
	client := api.New(base, sess)

	ctx, cancel := context.WithTimeout(context.Background(), RequestTimeout)
	defer cancel()

	switch os.Args[1] {
	case "login":
		runLogin(ctx, client, logger, os.Args[2:])
	case "logout":
		if err := client.Logout(); err != nil {
			fail(logger, err)
		}
		logger.Info("session cleared")
	case "drivers":
		runDrivers(ctx, client, logger, os.Args[2:])
	case "add-driver":
		runAddDriver(ctx, client, logger, os.Args[2:])
	case "toggle":
		runToggle(ctx, client, logger, os.Args[2:])
	case "wallet":
		runWallet(ctx, client, logger, os.Args[2:])
	case "users":
		runUsers(ctx, client, logger, os.Args[2:])
	case "prices":
		runPrices(ctx, client, logger, os.Args[2:])
	case "overview":
		runOverview(ctx, client, logger)
	case "export":
		runExport(ctx, client, logger, os.Args[2:])
	case "live":
		runLive(client, logger)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dashboard <command> [flags]

commands:
  login       -email -password
  logout
  drivers     [-search text] [-field name=value] [-page N] [-size N]
  add-driver  -name -phone -vehicle-type -vehicle-number -license -aadhaar [...]
  toggle      -id
  wallet      -id -amount
  users       [-search text] [-page N] [-size N]
  prices      [-bike N -taxi N -port N]
  overview
  export      [-out file]
  live`)
}

func fail(logger *Logger, err error) {
	var verr *api.ValidationError
	var aerr *api.APIError
	switch {
	case errors.Is(err, api.ErrUnauthenticated):
		logger.Error("not logged in (or session expired), run: dashboard login")
	case errors.Is(err, api.ErrBusy):
		logger.Error("another change is still in flight, try again")
	case errors.As(err, &verr):
		logger.Error("invalid input:")
		for field, msg := range verr.Fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
	case errors.As(err, &aerr):
		logger.Error("server refused (%d): %s", aerr.Status, aerr.Message)
	default:
		logger.Error("%v", err)
	}
	os.Exit(1)
}

func runLogin(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "admin email")
	password := fs.String("password", "", "admin password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		logger.Error("email and password are required")
		os.Exit(1)
	}

	data, err := client.Login(ctx, *email, *password)
	if err != nil {
		fail(logger, err)
	}
	logger.Info("logged in as %s (%s)", *email, data.Role)
}

func runDrivers(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("drivers", flag.ExitOnError)
	search := fs.String("search", "", "free text search")
	field := fs.String("field", "", "field filter, name=value")
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "page size")
	fs.Parse(args)

	records, err := client.FetchDrivers(ctx)
	if err != nil {
		fail(logger, err)
	}

	drivers := store.NewDriverStore()
	drivers.Replace(records)

	view := NewDriverView(drivers, *size)
	view.SetSearch(*search)
	if *field != "" {
		name, value, ok := splitPair(*field)
		if !ok {
			logger.Error("field filter must look like name=value")
			os.Exit(1)
		}
		view.SetCriterion(name, value)
	}
	view.SetPage(*page)

	visible, count, w := view.Visible()
	printDrivers(visible)
	fmt.Printf("\npage %d/%d, %d matching of %d total\n",
		w.Page, paginate.TotalPages(count, w.Size), count, drivers.Len())
}

func runAddDriver(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("add-driver", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "10-digit mobile number")
	email := fs.String("email", "", "email (optional)")
	vehicleType := fs.String("vehicle-type", "", "port|taxi|bike|sedan|mini")
	vehicleNumber := fs.String("vehicle-number", "", "registration, e.g. TN01AB1234")
	license := fs.String("license", "", "driving licence number")
	aadhaar := fs.String("aadhaar", "", "12-digit aadhaar")
	pan := fs.String("pan", "", "PAN (optional)")
	ifsc := fs.String("ifsc", "", "IFSC (optional)")
	bank := fs.String("bank-account", "", "bank account (optional)")
	minWallet := fs.Float64("min-wallet", validation.MinWalletAmount, "opening wallet amount")
	licenseFiles := fs.Int("license-files", 1, "licence documents selected")
	aadhaarFiles := fs.Int("aadhaar-files", 1, "aadhaar documents selected")
	rcFiles := fs.Int("rc-files", 1, "RC documents selected")
	fs.Parse(args)

	draft := validation.DriverDraft{
		Name:            *name,
		Phone:           validation.FormatPhone(*phone),
		Email:           *email,
		VehicleNumber:   validation.FormatCode(*vehicleNumber),
		LicenseNumber:   validation.FormatCode(*license),
		AadharNumber:    validation.FormatAadhaar(*aadhaar),
		PanNumber:       validation.FormatCode(*pan),
		IfscCode:        validation.FormatCode(*ifsc),
		BankAccount:     *bank,
		MinWalletAmount: *minWallet,
	}

	files := validation.Attachments{
		License: placeholderFiles(*licenseFiles),
		Aadhaar: placeholderFiles(*aadhaarFiles),
		RC:      placeholderFiles(*rcFiles),
	}

	if err := client.CreateDriver(ctx, draft, *vehicleType, files); err != nil {
		fail(logger, err)
	}
	logger.Info("driver created, refetching list")

	records, err := client.FetchDrivers(ctx)
	if err != nil {
		fail(logger, err)
	}
	printDrivers(records)
}

func runToggle(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)
	id := fs.String("id", "", "driver id")
	fs.Parse(args)

	if *id == "" {
		logger.Error("driver id is required")
		os.Exit(1)
	}

	status, err := client.ToggleStatus(ctx, *id)
	if err != nil {
		fail(logger, err)
	}
	logger.Info("driver %s is now %s", *id, status)
}

func runWallet(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("wallet", flag.ExitOnError)
	id := fs.String("id", "", "driver id")
	amount := fs.Float64("amount", 0, "amount to credit")
	fs.Parse(args)

	if *id == "" {
		logger.Error("driver id is required")
		os.Exit(1)
	}

	data, err := client.AddToWallet(ctx, *id, *amount)
	if err != nil {
		fail(logger, err)
	}
	logger.Info("credited %.2f, balance is now %.2f", data.AddedAmount, data.Wallet)
}

func runUsers(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	search := fs.String("search", "", "free text search")
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 10, "page size")
	fs.Parse(args)

	records, total, err := client.FetchUsers(ctx, *page, *size)
	if err != nil {
		fail(logger, err)
	}

	users := store.NewUserStore()
	users.Replace(records, total)

	view := NewUserView(users, *size)
	view.SetSearch(*search)
	view.Page = *page

	visible, serverTotal := view.Visible()
	printUsers(visible)
	fmt.Printf("\npage %d/%d, %d registered users\n", view.ClampPage(), view.TotalPages(), serverTotal)
}

func runPrices(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("prices", flag.ExitOnError)
	bike := fs.Float64("bike", -1, "bike price per km")
	taxi := fs.Float64("taxi", -1, "taxi price per km")
	port := fs.Float64("port", -1, "port price per km")
	fs.Parse(args)

	if *bike >= 0 || *taxi >= 0 || *port >= 0 {
		current, err := client.RidePrices(ctx)
		if err != nil {
			fail(logger, err)
		}
		if *bike >= 0 {
			current.Bike = *bike
		}
		if *taxi >= 0 {
			current.Taxi = *taxi
		}
		if *port >= 0 {
			current.Port = *port
		}
		if err := client.SaveRidePrices(ctx, current); err != nil {
			fail(logger, err)
		}
		logger.Info("prices updated")
	}

	prices, err := client.RidePrices(ctx)
	if err != nil {
		fail(logger, err)
	}
	fmt.Printf("bike: %.2f  taxi: %.2f  port: %.2f\n", prices.Bike, prices.Taxi, prices.Port)
}

func runOverview(ctx context.Context, client *api.Client, logger *Logger) {
	overview, err := client.Overview(ctx)
	if err != nil {
		fail(logger, err)
	}

	fmt.Printf("drivers: %d total, %d live, %d offline\n",
		overview.TotalDrivers, overview.LiveDrivers, overview.OfflineDrivers)
	fmt.Printf("users: %d   wallet total: %.2f   rides: %d\n",
		overview.TotalUsers, overview.WalletTotal, overview.TotalRides)
	for vt, n := range overview.DriversByType {
		fmt.Printf("  %s: %d\n", vt, n)
	}
}

func runExport(ctx context.Context, client *api.Client, logger *Logger, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "sales.xlsx", "output file")
	fs.Parse(args)

	data, err := client.ExportSales(ctx)
	if err != nil {
		fail(logger, err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fail(logger, err)
	}
	logger.Info("wrote %d bytes to %s", len(data), *out)
}

func runLive(client *api.Client, logger *Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, err := client.FetchDrivers(ctx)
	if err != nil {
		fail(logger, err)
	}
	drivers := store.NewDriverStore()
	drivers.Replace(records)
	logger.Info("tracking %d drivers", drivers.Len())

	sess, err := session.New("")
	if err != nil {
		fail(logger, err)
	}

	wsURL := os.Getenv("FLEET_ADMIN_WS_URL")
	if wsURL == "" {
		wsURL = DefaultWSURL
	}

	live := NewLiveClient(drivers, logger)
	if err := live.Connect(wsURL, sess.Token()); err != nil {
		fail(logger, err)
	}
	defer live.Close()

	err = live.Run(ctx, func(ev dto.DriverEvent) {
		switch ev.Type {
		case dto.EventDriverStatus:
			logger.Live("driver %s -> %s", ev.DriverID, ev.Status)
		case dto.EventDriverWallet:
			logger.Live("driver %s wallet -> %.2f", ev.DriverID, ev.Wallet)
		case dto.EventDriverJoined:
			logger.Live("driver %s joined (%s)", ev.DriverID, ev.Name)
		}
	})
	if err != nil && ctx.Err() == nil {
		fail(logger, err)
	}
}

func printDrivers(drivers []models.Driver) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tVEHICLE\tNUMBER\tSTATUS\tWALLET")
	for _, d := range drivers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			d.ID, d.Name, d.Phone, d.VehicleType, d.VehicleNumber, d.Status, d.Wallet)
	}
	tw.Flush()
}

func printUsers(users []models.User) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPHONE\tCUSTOMER\tWALLET")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\n",
			u.ID, u.Name, u.Phone, u.CustomerID, u.Wallet)
	}
	tw.Flush()
}

func splitPair(s string) (string, string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

// placeholderFiles stands in for real document picks when driving the flow
// from the terminal: document content uploads out of band.
func placeholderFiles(n int) []validation.FileMeta {
	files := make([]validation.FileMeta, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, validation.FileMeta{
			Name:      fmt.Sprintf("document-%d.pdf", i+1),
			MediaType: "application/pdf",
			Size:      1 << 20,
		})
	}
	return files
}
