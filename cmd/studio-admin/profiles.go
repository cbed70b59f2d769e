package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	"github.com/ArturCreativeLab/studio-api/internal/data"
	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

func runListProfiles(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("list-profiles", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, _, err := connectInfra(&connectInfraOptions{Logger: ctx.Logger, Config: &ctx.Config, WantDB: true})
	if err != nil {
		return err
	}
	defer closeInfra(ctx.Logger, db, nil)

	repo := data.NewProfileRepo(db)
	profiles, err := repo.List(ctx.Ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(tw, "ID\tEMAIL\tNAME\tROLE\tORCID\tCONFIRMED\n"); err != nil {
		return err
	}
	for _, p := range profiles {
		orcid := ""
		if p.Orcid != nil {
			orcid = *p.Orcid
		}
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\t%t\n",
			p.ID, p.Email, p.FullName, p.Role, orcid, p.EmailConfirmed); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runCreateUser(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "initial password (required, min 8 characters)")
	name := fs.String("name", "", "display name")
	role := fs.String("role", "user", "initial role: admin or user")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("-email and -password are required")
	}
	if len(*password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	newRole := domainauth.Role(*role)
	if newRole != domainauth.RoleAdmin && newRole != domainauth.RoleUser {
		return fmt.Errorf("role %q is not assignable", *role)
	}

	db, _, err := connectInfra(&connectInfraOptions{Logger: ctx.Logger, Config: &ctx.Config, WantDB: true})
	if err != nil {
		return err
	}
	defer closeInfra(ctx.Logger, db, nil)

	repo := data.NewProfileRepo(db)

	fullName := strings.TrimSpace(*name)
	if fullName == "" {
		fullName = "User"
	}
	userID := uuid.New().String()
	profile, err := repo.Upsert(ctx.Ctx, &model.UpsertProfileRequest{
		ID:       userID,
		Email:    strings.ToLower(strings.TrimSpace(*email)),
		FullName: fullName,
		Picture:  domainauth.AvatarURL(fullName),
	})
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := repo.SetPassword(ctx.Ctx, profile.ID, string(hash)); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	if err := repo.ConfirmEmail(ctx.Ctx, profile.ID); err != nil {
		return fmt.Errorf("confirm email: %w", err)
	}
	if newRole != domainauth.RoleUser {
		if err := repo.SetRole(ctx.Ctx, core.SetRoleParams{TargetUserID: profile.ID, NewRole: newRole}); err != nil {
			return fmt.Errorf("set role: %w", err)
		}
	}

	ctx.Logger.InfoContext(ctx.Ctx, "account created",
		"id", profile.ID, "email", profile.Email, "role", string(newRole))
	return nil
}

func runConfirmEmail(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("confirm-email", flag.ContinueOnError)
	email := fs.String("email", "", "account email (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-email is required")
	}

	db, _, err := connectInfra(&connectInfraOptions{Logger: ctx.Logger, Config: &ctx.Config, WantDB: true})
	if err != nil {
		return err
	}
	defer closeInfra(ctx.Logger, db, nil)

	repo := data.NewProfileRepo(db)
	profile, err := repo.GetByEmail(ctx.Ctx, strings.ToLower(strings.TrimSpace(*email)))
	if err != nil {
		return err
	}
	if err := repo.ConfirmEmail(ctx.Ctx, profile.ID); err != nil {
		return err
	}

	ctx.Logger.InfoContext(ctx.Ctx, "email confirmed", "id", profile.ID, "email", profile.Email)
	return nil
}

func runSetRole(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("set-role", flag.ContinueOnError)
	email := fs.String("email", "", "account email (required)")
	role := fs.String("role", "", "new role: admin or user (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *role == "" {
		return errors.New("-email and -role are required")
	}
	newRole := domainauth.Role(*role)
	if newRole != domainauth.RoleAdmin && newRole != domainauth.RoleUser {
		return fmt.Errorf("role %q is not assignable", *role)
	}

	db, _, err := connectInfra(&connectInfraOptions{Logger: ctx.Logger, Config: &ctx.Config, WantDB: true})
	if err != nil {
		return err
	}
	defer closeInfra(ctx.Logger, db, nil)

	repo := data.NewProfileRepo(db)
	profile, err := repo.GetByEmail(ctx.Ctx, strings.ToLower(strings.TrimSpace(*email)))
	if err != nil {
		return err
	}
	if err := repo.SetRole(ctx.Ctx, core.SetRoleParams{TargetUserID: profile.ID, NewRole: newRole}); err != nil {
		return err
	}

	ctx.Logger.InfoContext(ctx.Ctx, "role updated",
		"id", profile.ID, "email", profile.Email, "role", string(newRole))
	return nil
}
