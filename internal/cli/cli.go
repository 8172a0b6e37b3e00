// Package cli implements the interactive text-menu front end. It reads input,
// calls the services and prints results; every rule, check and invariant
// lives below it. The only state it keeps is the current session token.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iliyamo/flight-reservation-system/internal/logger"
	"github.com/iliyamo/flight-reservation-system/internal/model"
	"github.com/iliyamo/flight-reservation-system/internal/service"
)

// CLI drives the interactive session.
type CLI struct {
	in      *bufio.Reader
	out     io.Writer
	auth    *service.AuthService
	booking *service.BookingService
	flights *service.FlightService
	reports *service.ReportService
	log     *logger.Logger

	session *service.Session // nil while logged out
}

// New constructs a CLI reading from in and writing to out.
func New(in io.Reader, out io.Writer, auth *service.AuthService, booking *service.BookingService, flights *service.FlightService, reports *service.ReportService, log *logger.Logger) *CLI {
	return &CLI{
		in:      bufio.NewReader(in),
		out:     out,
		auth:    auth,
		booking: booking,
		flights: flights,
		reports: reports,
		log:     log,
	}
}

// Run loops between the login menu and the main menu until the user quits or
// input ends.
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprintln(c.out, "  FLIGHT RESERVATION SYSTEM")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))

	for {
		var quit bool
		var err error
		if c.session == nil {
			quit, err = c.loginMenu(ctx)
		} else {
			quit, err = c.mainMenu(ctx)
		}
		if errors.Is(err, io.EOF) || quit {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *CLI) loginMenu(ctx context.Context) (quit bool, err error) {
	fmt.Fprintln(c.out, "\n==== LOGIN ====")
	fmt.Fprintln(c.out, "1. Log in")
	fmt.Fprintln(c.out, "2. Register")
	fmt.Fprintln(c.out, "0. Quit")

	choice, err := c.readInt("Choice: ")
	if err != nil {
		return false, err
	}
	switch choice {
	case 1:
		return false, c.login(ctx)
	case 2:
		return false, c.register(ctx)
	case 0:
		return true, nil
	default:
		fmt.Fprintln(c.out, "Invalid option.")
		return false, nil
	}
}

func (c *CLI) mainMenu(ctx context.Context) (quit bool, err error) {
	// Re-verify the token each round so an expired session drops back to the
	// login menu instead of failing action by action.
	sess, err := c.auth.Authenticate(ctx, c.session.Token)
	if err != nil {
		fmt.Fprintln(c.out, "Session expired, please log in again.")
		c.session = nil
		return false, nil
	}
	c.session = &sess

	fmt.Fprintf(c.out, "\n==== WELCOME, %s! ====\n", strings.ToUpper(sess.Name))
	fmt.Fprintln(c.out, "1. List flights")
	fmt.Fprintln(c.out, "2. Book a seat")
	fmt.Fprintln(c.out, "3. My reservations")
	fmt.Fprintln(c.out, "4. Cancel a reservation")
	fmt.Fprintln(c.out, "5. Reports")
	fmt.Fprintln(c.out, "6. Edit profile")
	if sess.Role == model.RoleAdmin {
		fmt.Fprintln(c.out, "7. [ADMIN] Manage flights")
		fmt.Fprintln(c.out, "8. [ADMIN] Administrative reports")
	}
	fmt.Fprintln(c.out, "9. Log out")
	fmt.Fprintln(c.out, "0. Quit")

	choice, err := c.readInt("Choice: ")
	if err != nil {
		return false, err
	}
	switch choice {
	case 1:
		return false, c.listFlights(ctx)
	case 2:
		return false, c.bookSeat(ctx)
	case 3:
		return false, c.myReservations(ctx)
	case 4:
		return false, c.cancelReservation(ctx)
	case 5:
		return false, c.reportsMenu(ctx)
	case 6:
		return false, c.editProfile(ctx)
	case 7:
		if sess.Role == model.RoleAdmin {
			return false, c.adminFlightsMenu(ctx)
		}
		fmt.Fprintln(c.out, "Access denied.")
		return false, nil
	case 8:
		if sess.Role == model.RoleAdmin {
			return false, c.adminReportsMenu(ctx)
		}
		fmt.Fprintln(c.out, "Access denied.")
		return false, nil
	case 9:
		c.log.Info("user %s logged out", sess.Email)
		c.session = nil
		fmt.Fprintln(c.out, "Logged out.")
		return false, nil
	case 0:
		return true, nil
	default:
		fmt.Fprintln(c.out, "Invalid option.")
		return false, nil
	}
}

func (c *CLI) login(ctx context.Context) error {
	email, err := c.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("Password: ")
	if err != nil {
		return err
	}
	sess, err := c.auth.Login(ctx, email, password)
	if err != nil {
		c.report(err)
		c.log.Warn("failed login attempt for %s", email)
		return nil
	}
	c.session = &sess
	c.log.Info("user %s logged in", sess.Email)
	fmt.Fprintf(c.out, "Welcome back, %s!\n", sess.Name)
	return nil
}

func (c *CLI) register(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== REGISTER ====")
	name, err := c.readLine("Name: ")
	if err != nil {
		return err
	}
	email, err := c.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := c.readLine("Password: ")
	if err != nil {
		return err
	}
	u, err := c.auth.Register(ctx, name, email, password, model.RoleCustomer)
	if err != nil {
		c.report(err)
		return nil
	}
	c.log.Info("new user registered: %s", u.Email)
	fmt.Fprintf(c.out, "Account created. Your id: %s\n", u.ID)
	return nil
}

func (c *CLI) editProfile(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n==== EDIT PROFILE ====")
	name, err := c.readLine(fmt.Sprintf("New name (current: %s, empty keeps it): ", c.session.Name))
	if err != nil {
		return err
	}
	email, err := c.readLine(fmt.Sprintf("New email (current: %s, empty keeps it): ", c.session.Email))
	if err != nil {
		return err
	}
	u, err := c.auth.UpdateProfile(ctx, c.session.UserID, name, email)
	if err != nil {
		c.report(err)
		return nil
	}
	c.log.Info("user %s updated profile", u.Email)
	fmt.Fprintln(c.out, "Profile updated.")
	return nil
}

// report prints a rejected operation or persistence failure to the user.
// Business rejections are expected outcomes; anything else is also logged.
func (c *CLI) report(err error) {
	switch {
	case errors.Is(err, service.ErrFlightNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrReservationNotFound),
		errors.Is(err, service.ErrSeatInvalid),
		errors.Is(err, service.ErrSeatTaken),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrAlreadyCancelled),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidFlight),
		errors.Is(err, service.ErrFlightHasReservations):
		fmt.Fprintf(c.out, "Error: %v\n", err)
	default:
		c.log.Error("operation failed: %v", err)
		fmt.Fprintf(c.out, "Unexpected error: %v\n", err)
	}
}

func (c *CLI) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) readInt(prompt string) (int, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(c.out, "Please enter a valid number.")
	}
}

func (c *CLI) readFloat(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err == nil {
			return f, nil
		}
		fmt.Fprintln(c.out, "Please enter a valid number.")
	}
}
