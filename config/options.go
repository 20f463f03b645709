package config

import "scrawl/overlay"

// OverlayOptions converts the editor configuration to overlay options,
// with unset values keeping the overlay defaults.
func (c EditorConfig) OverlayOptions() overlay.Options {
	opts := overlay.DefaultOptions()
	if c.AutoSize != nil {
		opts.AutoSize = *c.AutoSize
	}
	if c.SelectText != nil {
		opts.SelectText = *c.SelectText
	}
	if c.HideLabel != nil {
		opts.HideLabel = *c.HideLabel
	}
	opts.Placeholder = c.Placeholder
	return opts
}
