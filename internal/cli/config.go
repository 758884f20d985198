package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/gesture"
)

// Viper keys for thresholds.
const (
	keyLongPress       = "thresholds.long_press"
	keyDoubleTapWindow = "thresholds.double_tap_window"
	keySwipeTrigger    = "thresholds.swipe_trigger"
	keyMovement        = "thresholds.movement"
	keyScroll          = "thresholds.scroll"
	keyMaxSwipe        = "thresholds.max_swipe"
	keyDisabled        = "thresholds.disabled"
)

func setConfigDefaults(v *viper.Viper) {
	d := gesture.DefaultConfig()
	v.SetDefault(keyLongPress, d.LongPressDuration)
	v.SetDefault(keyDoubleTapWindow, d.DoubleTapWindow)
	v.SetDefault(keySwipeTrigger, d.SwipeTriggerThreshold)
	v.SetDefault(keyMovement, d.MovementThreshold)
	v.SetDefault(keyScroll, d.ScrollThreshold)
	v.SetDefault(keyMaxSwipe, d.MaxSwipeDistance)
	v.SetDefault(keyDisabled, false)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}

// LoadConfig reads the thresholds from v and validates them.
func LoadConfig(v *viper.Viper) (gesture.Config, error) {
	cfg := gesture.Config{
		LongPressDuration:     v.GetDuration(keyLongPress),
		DoubleTapWindow:       v.GetDuration(keyDoubleTapWindow),
		SwipeTriggerThreshold: v.GetFloat64(keySwipeTrigger),
		MovementThreshold:     v.GetFloat64(keyMovement),
		ScrollThreshold:       v.GetFloat64(keyScroll),
		MaxSwipeDistance:      v.GetFloat64(keyMaxSwipe),
		Disabled:              v.GetBool(keyDisabled),
	}
	if err := cfg.Validate(); err != nil {
		return gesture.Config{}, err
	}
	return cfg, nil
}

type thresholdsView struct {
	LongPress       string  `yaml:"long_press"`
	DoubleTapWindow string  `yaml:"double_tap_window"`
	SwipeTrigger    float64 `yaml:"swipe_trigger"`
	Movement        float64 `yaml:"movement"`
	Scroll          float64 `yaml:"scroll"`
	MaxSwipe        float64 `yaml:"max_swipe"`
	Disabled        bool    `yaml:"disabled"`
}

type configView struct {
	Thresholds thresholdsView `yaml:"thresholds"`
}

// NewConfigCommand creates the config command, which prints the effective
// thresholds in config file form.
func NewConfigCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(opts.v)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(configView{Thresholds: thresholdsView{
				LongPress:       cfg.LongPressDuration.String(),
				DoubleTapWindow: cfg.DoubleTapWindow.String(),
				SwipeTrigger:    cfg.SwipeTriggerThreshold,
				Movement:        cfg.MovementThreshold,
				Scroll:          cfg.ScrollThreshold,
				MaxSwipe:        cfg.MaxSwipeDistance,
				Disabled:        cfg.Disabled,
			}})
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
