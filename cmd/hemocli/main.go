package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hemoglobin-nil/hemoglobin-go/authn"
	"github.com/hemoglobin-nil/hemoglobin-go/bloodbank"
	"github.com/hemoglobin-nil/hemoglobin-go/client"
	"github.com/hemoglobin-nil/hemoglobin-go/internal/config"
	"github.com/hemoglobin-nil/hemoglobin-go/session"
	"github.com/hemoglobin-nil/hemoglobin-go/session/storefile"
	"github.com/hemoglobin-nil/hemoglobin-go/users"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run() error {
	cmd := flag.String("cmd", "whoami", "Command: login|whoami|donors|dashboard|logout")
	mobile := flag.String("mobile", "", "Mobile number (login)")
	dob := flag.String("dob", "", "Date of birth (login)")
	password := flag.String("password", "", "Password (admin login)")
	pageNo := flag.Int("page", 1, "Page number (donors)")
	pageSize := flag.Int("size", 10, "Page size (donors)")
	bloodGroup := flag.String("blood-group", "", "Blood group filter (donors)")
	flag.Parse()

	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	c := config.New()
	displayAppname(c.GetAppName())

	ctx := context.Background()
	store := session.Open(ctx, storefile.New(c.GetSessionFile()))

	api, err := client.New(client.Config{
		BaseURL: c.GetBaseURL(),
		Timeout: c.GetTimeout(),
	}, store)
	if err != nil {
		return err
	}

	switch *cmd {
	case "login":
		return login(ctx, api, store, authn.Credentials{
			MobileNumber: *mobile,
			DateOfBirth:  *dob,
			Password:     *password,
		})
	case "whoami":
		return whoami(store)
	case "donors":
		return donors(ctx, api, *pageNo, *pageSize, *bloodGroup)
	case "dashboard":
		return dashboard(ctx, api)
	case "logout":
		store.Logout(ctx)
		fmt.Println("Logged out.")
		return nil
	default:
		return fmt.Errorf("unknown command %q", *cmd)
	}
}

func login(ctx context.Context, api *client.Client, store *session.Store, creds authn.Credentials) error {
	if creds.MobileNumber == "" || creds.DateOfBirth == "" {
		return fmt.Errorf("--mobile and --dob are required")
	}

	profile, err := authn.NewService(api).Login(ctx, store, creds)
	if err != nil {
		return err
	}

	if role, ok := store.Role(); ok {
		fmt.Printf("Logged in as %s (%s)\n", role.ID, role.UserType)
	} else {
		fmt.Println("Logged in.")
	}
	if profile != nil {
		fmt.Printf("Profile: %s, blood group %s\n", profile.FullName, profile.BloodGroup)
	}
	return nil
}

func whoami(store *session.Store) error {
	role, ok := store.Role()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("User %s, type %s\n", role.ID, role.UserType)
	if u := store.User(); u != nil {
		fmt.Printf("Cached profile: %s (%s)\n", u.FullName, u.BloodGroup)
	}
	return nil
}

func donors(ctx context.Context, api *client.Client, pageNo, pageSize int, bloodGroup string) error {
	page, err := users.NewService(api).AllDonors(ctx, users.DonorFilter{
		PageNo:     pageNo,
		PageSize:   pageSize,
		BloodGroup: bloodGroup,
	})
	if err != nil {
		return err
	}

	if len(page.Data) == 0 {
		fmt.Println("No donors found.")
		return nil
	}
	for _, d := range page.Data {
		fmt.Printf("%-30s %-4s %s\n", d.FullName, d.BloodGroup, d.Upazila)
	}
	fmt.Printf("Page %d (%d items), more: %s\n", page.Page, len(page.Data), strconv.FormatBool(page.HasMore))
	return nil
}

func dashboard(ctx context.Context, api *client.Client) error {
	d, err := bloodbank.NewService(api).Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Donors: %d  Volunteers: %d  Campaigns: %d  Donations: %d\n",
		d.TotalDonors, d.TotalVolunteers, d.TotalCampaigns, d.TotalDonations)
	for group, count := range d.BloodGroups {
		fmt.Printf("  %-4s %d\n", group, count)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
