package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"sensorhub-server/internal/data_plane/devices"
	"sensorhub-server/internal/shared_kernel/domain"

	"github.com/spf13/pflag"
)

// Probes a device directly, without going through the server. Handy for
// checking firmware behavior in the field.
func main() {
	address := pflag.String("address", "", "device address (host:port)")
	authKey := pflag.String("auth-key", "", "auth key of a registered device")
	timeout := pflag.Duration("timeout", 10*time.Second, "request timeout")
	pflag.Parse()

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: slog.LevelDebug})),
	)

	if *address == "" {
		slog.Error("missing --address")
		os.Exit(1)
	}

	client := devices.NewClient(devices.WithTimeout(*timeout))
	ctx := context.Background()

	info, err := client.RegistrationInfo(ctx, *address)
	if err != nil {
		slog.Error("fetching registration info", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("registration info", slog.Bool("registered", info.IsRegistered))

	if *authKey == "" {
		return
	}

	sensors, err := client.FetchSensorsInfo(ctx, domain.Device{Address: *address, AuthKey: *authKey})
	if err != nil {
		slog.Error("fetching sensors", slog.Any("error", err))
		os.Exit(1)
	}

	for kind, typeInfo := range sensors {
		for sensorAddress, reading := range typeInfo.Sensors {
			slog.Info("sensor reading",
				slog.String("kind", kind),
				slog.String("address", sensorAddress),
				slog.Any("data", reading),
			)
		}
	}
}
