package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newWizCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wiz",
		Short: "Calls against the WiZ bulb profiling tool",
	}
	cmd.AddCommand(newSetRGBWCmd(a))
	cmd.AddCommand(newWizAddDataPointCmd(a))
	return cmd
}

// rawJSON checks that data is JSON; the payload is then forwarded byte for byte.
func rawJSON(data string) (json.RawMessage, error) {
	if !json.Valid([]byte(data)) {
		return nil, fmt.Errorf("--data is not valid JSON: %q", data)
	}
	return json.RawMessage(data), nil
}

func newSetRGBWCmd(a *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:     "set-rgbw",
		Short:   "Set the bulb channels",
		Example: `  lightcal wiz set-rgbw --data '{"R":255,"G":0,"B":0,"CW":0,"WW":13}'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := rawJSON(data)
			if err != nil {
				return err
			}
			w, err := a.wizClient()
			if err != nil {
				return err
			}
			return a.await(cmd, "setRGBW", w.SetRGBW(cmd.Context(), payload))
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON object sent as is (required)")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newWizAddDataPointCmd(a *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:     "add-data-point",
		Short:   "Record a measurement for the current channel setting",
		Example: `  lightcal wiz add-data-point --data '{"R":255,"G":0,"B":0,"CW":0,"WW":13,"X":0.339,"Y":0.178,"Z":0.020}'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := rawJSON(data)
			if err != nil {
				return err
			}
			w, err := a.wizClient()
			if err != nil {
				return err
			}
			return a.await(cmd, "addDataPoint", w.AddDataPoint(cmd.Context(), payload))
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON object sent as is (required)")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}
