// Package seed loads a chart of accounts from YAML and creates the accounts
// that do not exist yet.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"gopkg.in/yaml.v3"
)

// Chart is the YAML document: a flat list where parents precede children.
type Chart struct {
	Accounts []ChartAccount `yaml:"accounts"`
}

// ChartAccount is one account of the chart. Parent is the parent's code.
type ChartAccount struct {
	Code   string             `yaml:"code"`
	Name   string             `yaml:"name"`
	Type   domain.AccountType `yaml:"type"`
	Parent string             `yaml:"parent,omitempty"`
}

// AccountDirectory is the part of the account service the seeder needs.
type AccountDirectory interface {
	Resolve(ctx context.Context, codeOrName string) (*domain.Account, error)
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
}

// LoadFile reads and validates a chart from disk.
func LoadFile(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart of accounts %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes and validates a chart.
func Load(r io.Reader) (*Chart, error) {
	var chart Chart
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&chart); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewValidationError("invalid chart of accounts: %v", err)
	}
	if err := chart.Validate(); err != nil {
		return nil, err
	}
	return &chart, nil
}

// Validate checks codes are unique, types are known and every parent is
// listed before its children.
func (c *Chart) Validate() error {
	seen := make(map[string]bool, len(c.Accounts))
	for i, a := range c.Accounts {
		code := strings.TrimSpace(a.Code)
		if code == "" || strings.TrimSpace(a.Name) == "" {
			return apperrors.NewValidationError("chart entry %d: code and name are required", i+1)
		}
		if !a.Type.IsValid() {
			return apperrors.NewValidationError("chart entry %s: unknown account type %q", code, a.Type)
		}
		if seen[code] {
			return apperrors.NewValidationError("chart entry %s: duplicate code", code)
		}
		if a.Parent != "" && !seen[a.Parent] {
			return apperrors.NewValidationError("chart entry %s: parent %s must be listed before it", code, a.Parent)
		}
		seen[code] = true
	}
	return nil
}

// Apply creates every account of the chart whose code is not taken yet.
// Running it twice creates nothing the second time.
func Apply(ctx context.Context, directory AccountDirectory, chart *Chart, logger *slog.Logger) (int, error) {
	ids := make(map[string]int64, len(chart.Accounts))
	created := 0

	for _, a := range chart.Accounts {
		existing, err := directory.Resolve(ctx, a.Code)
		switch {
		case err == nil && existing.Code == a.Code:
			ids[a.Code] = existing.ID
			continue
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			return created, fmt.Errorf("failed to look up account %s: %w", a.Code, err)
		}

		req := dto.CreateAccountRequest{Code: a.Code, Name: a.Name, Type: a.Type}
		if a.Parent != "" {
			parentID := ids[a.Parent]
			req.ParentID = &parentID
		}
		acc, err := directory.CreateAccount(ctx, req)
		if err != nil {
			return created, fmt.Errorf("failed to create account %s: %w", a.Code, err)
		}
		ids[a.Code] = acc.ID
		created++
		logger.Debug("Seeded account", slog.String("code", acc.Code), slog.Int64("account_id", acc.ID))
	}

	logger.Info("Chart of accounts applied", slog.Int("created", created), slog.Int("total", len(chart.Accounts)))
	return created, nil
}
