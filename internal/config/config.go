package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"loanstress/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load loan terms from a separate YAML (e.g. examples/loans/*.yaml).
	// If both LoanFile and Loan are provided, Loan overrides LoanFile.
	LoanFile string     `yaml:"loan_file"`
	Loan     LoanConfig `yaml:"loan"`
}

type LoanConfig struct {
	Name            string   `yaml:"name"`
	Principal       float64  `yaml:"principal"`
	AnnualRatePct   float64  `yaml:"annual_rate_pct"`
	DurationMonths  int      `yaml:"duration_months"`
	CollateralValue *float64 `yaml:"collateral_value"`
	MonthlyIncome   *float64 `yaml:"monthly_income"`
	MonthlyExpenses *float64 `yaml:"monthly_expenses"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for listing partial presets.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If loan_file is set, load it and merge in any explicit overrides from c.Loan.
	if c.LoanFile != "" {
		loanPath := c.LoanFile
		if !filepath.IsAbs(loanPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), loanPath)
			if _, err := os.Stat(cand); err == nil {
				loanPath = cand
			}
		}
		loaded, err := loadLoanFile(loanPath)
		if err != nil {
			return nil, err
		}
		c.Loan = MergeLoan(loaded, c.Loan)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.Loan.ToModel().Validate(); err != nil {
		return fmt.Errorf("loan config invalid: %w", err)
	}
	return nil
}

func (l LoanConfig) ToModel() model.Loan {
	return model.Loan{
		Principal:       l.Principal,
		AnnualRatePct:   l.AnnualRatePct,
		DurationMonths:  l.DurationMonths,
		CollateralValue: l.CollateralValue,
		MonthlyIncome:   l.MonthlyIncome,
		MonthlyExpenses: l.MonthlyExpenses,
	}
}

type loanFileWrapper struct {
	Loan LoanConfig `yaml:"loan"`
}

func loadLoanFile(path string) (LoanConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return LoanConfig{}, err
	}
	var w loanFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return LoanConfig{}, err
	}
	return w.Loan, nil
}

// MergeLoan overlays set fields from override onto base. Zero-valued numbers
// in the override are treated as unset; optional fields merge only when the
// override supplies them.
func MergeLoan(base, override LoanConfig) LoanConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Principal != 0 {
		out.Principal = override.Principal
	}
	if override.AnnualRatePct != 0 {
		out.AnnualRatePct = override.AnnualRatePct
	}
	if override.DurationMonths != 0 {
		out.DurationMonths = override.DurationMonths
	}
	if override.CollateralValue != nil {
		out.CollateralValue = override.CollateralValue
	}
	if override.MonthlyIncome != nil {
		out.MonthlyIncome = override.MonthlyIncome
	}
	if override.MonthlyExpenses != nil {
		out.MonthlyExpenses = override.MonthlyExpenses
	}
	return out
}
