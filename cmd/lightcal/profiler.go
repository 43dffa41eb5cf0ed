package main

import (
	"github.com/spf13/cobra"

	"github.com/lightcal/lightcal/client"
)

func newProfilerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiler",
		Short: "Calls against the multi-channel module profiler",
	}
	cmd.AddCommand(newGetChannelsCmd(a))
	cmd.AddCommand(newLAB2sRGBCmd(a))
	cmd.AddCommand(newSetDCSCmd(a))
	cmd.AddCommand(newDCS2LABCmd(a))
	cmd.AddCommand(newProfilerAddDataPointCmd(a))
	return cmd
}

func newGetChannelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get-channels",
		Short: "Print the number of channels of the profiled module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profilerClient()
			if err != nil {
				return err
			}
			return a.await(cmd, "getChannels", p.GetChannels(cmd.Context()))
		},
	}
}

func addLABFlags(cmd *cobra.Command, lab *client.LAB) {
	cmd.Flags().Float64Var(&lab.L, "l", 0, "Lightness L*")
	cmd.Flags().Float64Var(&lab.A, "a", 0, "a* component")
	cmd.Flags().Float64Var(&lab.B, "b", 0, "b* component")
}

func newLAB2sRGBCmd(a *app) *cobra.Command {
	var lab client.LAB

	cmd := &cobra.Command{
		Use:   "lab2srgb",
		Short: "Convert a LAB color to sRGB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profilerClient()
			if err != nil {
				return err
			}
			return a.await(cmd, "LAB2sRGB", p.LAB2sRGB(cmd.Context(), lab))
		},
	}
	addLABFlags(cmd, &lab)
	return cmd
}

func newSetDCSCmd(a *app) *cobra.Command {
	var vector []float64

	cmd := &cobra.Command{
		Use:   "set-dcs",
		Short: "Set the light to a DCS vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profilerClient()
			if err != nil {
				return err
			}
			return a.await(cmd, "setDCSVector", p.SetDCSVector(cmd.Context(), client.DCSVector(vector)))
		},
	}
	cmd.Flags().Float64SliceVar(&vector, "vector", nil, "Comma separated channel values, e.g. 0.1,0.2,0.3 (required)")
	_ = cmd.MarkFlagRequired("vector")
	return cmd
}

func newDCS2LABCmd(a *app) *cobra.Command {
	var vector []float64

	cmd := &cobra.Command{
		Use:   "dcs2lab",
		Short: "Predict the LAB color of a DCS vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profilerClient()
			if err != nil {
				return err
			}
			return a.await(cmd, "DCS2LAB", p.DCS2LAB(cmd.Context(), client.DCSVector(vector)))
		},
	}
	cmd.Flags().Float64SliceVar(&vector, "vector", nil, "Comma separated channel values (required)")
	_ = cmd.MarkFlagRequired("vector")
	return cmd
}

func newProfilerAddDataPointCmd(a *app) *cobra.Command {
	var (
		vector []float64
		lab    client.LAB
	)

	cmd := &cobra.Command{
		Use:   "add-data-point",
		Short: "Record the measured LAB color of a linear DCS vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.profilerClient()
			if err != nil {
				return err
			}
			return a.await(cmd, "addDataPoint", p.AddDataPoint(cmd.Context(), client.DCSVector(vector), lab))
		},
	}
	cmd.Flags().Float64SliceVar(&vector, "vector", nil, "Comma separated linear channel values (required)")
	addLABFlags(cmd, &lab)
	_ = cmd.MarkFlagRequired("vector")
	return cmd
}
