package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

var adminOpts struct {
	email    string
	name     string
	password string
	role     string
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create an admin account (super admin by default)",
	RunE:  runAdmin,
}

func init() {
	adminCmd.Flags().StringVar(&adminOpts.email, "email", "", "admin email")
	adminCmd.Flags().StringVar(&adminOpts.name, "name", "", "display name")
	adminCmd.Flags().StringVar(&adminOpts.password, "password", "", "password (prompted when empty)")
	adminCmd.Flags().StringVar(&adminOpts.role, "role", models.AdminRoleSuper, "super_admin | editor")
}

func runAdmin(cmd *cobra.Command, args []string) error {
	banner(cmd, "Admin Seeder")

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	email := services.NormalizeEmail(promptIfEmpty(in, out, adminOpts.email, "Email: "))
	name := promptIfEmpty(in, out, adminOpts.name, "Name: ")
	password := promptIfEmpty(in, out, adminOpts.password, "Password (min 8 characters): ")

	admin, err := newAdmin(email, name, password, adminOpts.role)
	if err != nil {
		return err
	}

	if err := connect(); err != nil {
		return err
	}

	var existing models.Admin
	err = config.DB.Where("email = ?", admin.Email).First(&existing).Error
	if err == nil {
		return fmt.Errorf("admin with email %q already exists", admin.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✅ Admin Created Successfully!")
	fmt.Fprintf(out, "ID:    %s\n", admin.ID)
	fmt.Fprintf(out, "Email: %s\n", admin.Email)
	fmt.Fprintf(out, "Role:  %s\n", admin.Role)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Login at POST /api/v1/admin/login with email and password")
	return nil
}

// newAdmin validates input and hashes the password.
func newAdmin(email, name, password, role string) (models.Admin, error) {
	if email == "" || !strings.Contains(email, "@") {
		return models.Admin{}, errors.New("a valid email is required")
	}
	if strings.TrimSpace(name) == "" {
		return models.Admin{}, errors.New("name is required")
	}
	if role != models.AdminRoleSuper && role != models.AdminRoleEditor {
		return models.Admin{}, fmt.Errorf("unknown role %q", role)
	}
	hash, err := services.GetAdminAuthService().HashPassword(password)
	if err != nil {
		return models.Admin{}, err
	}
	return models.Admin{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         role,
		Status:       models.AdminStatusActive,
	}, nil
}

func promptIfEmpty(in *bufio.Reader, out io.Writer, value, label string) string {
	if value != "" {
		return value
	}
	fmt.Fprint(out, label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
