package service

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/krownhq/krown-cli/pkg/api"
	clierrors "github.com/krownhq/krown-cli/pkg/errors"
	"github.com/krownhq/krown-cli/pkg/formatter"
	"github.com/krownhq/krown-cli/pkg/logger"
	"github.com/krownhq/krown-cli/pkg/prompter"
)

// CafeService manages café records and their staff accounts
type CafeService struct{}

// NewCafeService creates a new cafe service
func NewCafeService() *CafeService {
	return &CafeService{}
}

var (
	cafeMobilePattern = regexp.MustCompile(`^\+?\d{10,15}$`)
	timePattern       = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func validateCafeInput(input api.CreateCafeInput) error {
	if len(input.CafeName) < 3 {
		return clierrors.ValidationError("cafe name", "must be at least 3 characters")
	}
	if len(input.CafeLocation) < 5 {
		return clierrors.ValidationError("location", "must be at least 5 characters")
	}
	if !cafeMobilePattern.MatchString(input.CafeMobileNo) {
		return clierrors.ValidationError("mobile number", "must be 10-15 digits, optionally prefixed with +")
	}
	if len(input.CafeUpiID) < 5 {
		return clierrors.ValidationError("UPI ID", "must be at least 5 characters")
	}
	if !timePattern.MatchString(input.OpeningTime) {
		return clierrors.ValidationError("opening time", "must be HH:MM or HH:MM:SS")
	}
	if !timePattern.MatchString(input.ClosingTime) {
		return clierrors.ValidationError("closing time", "must be HH:MM or HH:MM:SS")
	}
	return nil
}

func validateCafeUserInput(input api.CreateCafeUserInput) error {
	if len(input.UserName) < 4 || len(input.UserName) > 15 {
		return clierrors.ValidationError("user name", "must be 4-15 characters")
	}
	if !emailPattern.MatchString(input.UserEmail) {
		return clierrors.ValidationError("email", "must be a valid email address")
	}
	if input.UserMobileNo != "" && !cafeMobilePattern.MatchString(input.UserMobileNo) {
		return clierrors.ValidationError("mobile number", "must be 10-15 digits, optionally prefixed with +")
	}
	if len(input.LoginUserName) < 4 || len(input.LoginUserName) > 15 {
		return clierrors.ValidationError("login username", "must be 4-15 characters")
	}
	if len(input.PasswordHash) < 6 {
		return clierrors.ValidationError("password", "must be at least 6 characters")
	}
	if input.CafeID == "" {
		return clierrors.ValidationError("cafe id", "is required")
	}
	return nil
}

// List displays all cafés
func (cs *CafeService) List() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	cafes, err := api.ListCafes()
	if err != nil {
		if handleSessionExpiry(err, api.IsUnauthorized(err)) {
			return fmt.Errorf("unauthorized")
		}
		formatter.PrintError("%s", api.Message(err, "Failed to fetch cafes"))
		return err
	}

	if len(cafes) == 0 {
		fmt.Println("No cafés registered.")
		return nil
	}

	rows := make([][]string, 0, len(cafes))
	for _, c := range cafes {
		rows = append(rows, []string{
			c.CafeID,
			c.CafeName,
			c.CafeLocation,
			c.CafeMobileNo,
			fmt.Sprintf("%s - %s", c.OpeningTime, c.ClosingTime),
		})
	}
	formatter.PrintTable([]string{"ID", "Name", "Location", "Mobile", "Hours"}, rows)
	fmt.Printf("\n%d cafés\n", len(cafes))
	return nil
}

// Create validates and registers a new café
func (cs *CafeService) Create(input api.CreateCafeInput) error {
	if err := validateCafeInput(input); err != nil {
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	logger.Debug("Creating cafe", "name", input.CafeName)
	if err := api.CreateCafe(input); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to create cafe"))
		return err
	}

	formatter.PrintSuccess("✓ Café %s created", formatter.Bold.Sprint(input.CafeName))
	return nil
}

// Delete removes a café after confirmation
func (cs *CafeService) Delete(cafeID string) error {
	if cafeID == "" {
		err := clierrors.ValidationError("cafe id", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete café %s? Its staff accounts go with it.", cafeID))
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteCafe(cafeID); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to delete cafe"))
		return err
	}

	formatter.PrintSuccess("✓ Café deleted")
	return nil
}

// ListUsers displays staff accounts, optionally scoped to one café
func (cs *CafeService) ListUsers(cafeID string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	var users []api.CafeUser
	var err error
	if cafeID == "" {
		users, err = api.ListAllCafeUsers()
	} else {
		users, err = api.ListCafeUsers(cafeID)
	}
	if err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to fetch users"))
		return err
	}

	if len(users) == 0 {
		fmt.Println("No staff accounts found.")
		return nil
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.UserID,
			u.UserName,
			u.LoginUserName,
			u.UserEmail,
			u.CafeName,
		})
	}
	formatter.PrintTable([]string{"ID", "Name", "Login", "Email", "Café"}, rows)
	return nil
}

// CreateUser validates and registers a café staff account
func (cs *CafeService) CreateUser(input api.CreateCafeUserInput) error {
	if err := validateCafeUserInput(input); err != nil {
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	logger.Debug("Creating cafe user", "login", input.LoginUserName, "cafe", input.CafeID)
	if err := api.CreateCafeUser(input); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to create user"))
		return err
	}

	formatter.PrintSuccess("✓ Staff account %s created", formatter.Bold.Sprint(input.LoginUserName))
	return nil
}

// UpdateUser applies a partial update to a staff account
func (cs *CafeService) UpdateUser(input api.UpdateCafeUserInput) error {
	if input.UserID == "" {
		err := clierrors.ValidationError("user id", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}
	if input.UserName != "" && (len(input.UserName) < 4 || len(input.UserName) > 15) {
		err := clierrors.ValidationError("user name", "must be 4-15 characters")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}
	if input.UserEmail != "" && !emailPattern.MatchString(input.UserEmail) {
		err := clierrors.ValidationError("email", "must be a valid email address")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}
	if input.UserMobileNo != "" && !cafeMobilePattern.MatchString(input.UserMobileNo) {
		err := clierrors.ValidationError("mobile number", "must be 10-15 digits, optionally prefixed with +")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}
	if input.PasswordHash != "" && len(input.PasswordHash) < 6 {
		err := clierrors.ValidationError("password", "must be at least 6 characters")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	if err := api.UpdateCafeUser(input); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to update user"))
		return err
	}

	formatter.PrintSuccess("✓ Staff account updated")
	return nil
}

// DeleteUser removes a staff account after confirmation
func (cs *CafeService) DeleteUser(userID string) error {
	if userID == "" {
		err := clierrors.ValidationError("user id", "is required")
		formatter.PrintError("%s", clierrors.FormatError(err))
		return err
	}

	if _, err := requireAuth(); err != nil {
		return err
	}

	confirm, err := prompter.PromptConfirm("Delete staff account " + strconv.Quote(userID) + "?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := api.DeleteCafeUser(userID); err != nil {
		formatter.PrintError("%s", api.Message(err, "Failed to delete user"))
		return err
	}

	formatter.PrintSuccess("✓ Staff account deleted")
	return nil
}
