package cli

import apperrors "github.com/agbru/primecalc/internal/errors"

var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider feeds the active theme to apperrors.
type CLIColorProvider struct{}

func (c CLIColorProvider) Yellow() string { return ColorYellow() }
func (c CLIColorProvider) Red() string    { return ColorRed() }
func (c CLIColorProvider) Reset() string  { return ColorReset() }
