package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
	"go.uber.org/multierr"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"

	"github.com/yunginnanet/ftdi-ads1119/pkg/ads1119"
	"github.com/yunginnanet/ftdi-ads1119/pkg/ft232h"
	"github.com/yunginnanet/ftdi-ads1119/pkg/i2cdev"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

type bus interface {
	drivers.I2C
	io.Closer
}

// This tool reads single-ended voltages from an ADS1119. Defaults are set in
// loadConfig and can be overridden by environment (ADS1119_*), flags, or an
// ads1119.json config file.
//
//	ads1119 --mode=read --channels=AN0,AN2
//	ads1119 --mode=scan --scan-interval=500ms
//	ads1119 --backend=ft232h --ft232h-index=0 --mode=regs
func main() {
	cfg := loadConfig()

	lvl, err := zerolog.ParseLevel(cfg.MustGet("log.level").String())
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	log = log.Level(lvl)

	channels, err := parseChannels(cfg.MustGet("channels").String())
	if err != nil {
		log.Fatal().Err(err).Msg("bad channel list")
	}

	b, err := openBus(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open I2C bus")
	}

	adc := ads1119.NewADS1119(b, ads1119.Config{
		Address:      uint16(cfg.MustGet("address").Uint()),
		PollAttempts: cfg.MustGet("poll.attempts").Int(),
		PollInterval: cfg.MustGet("poll.interval").Duration(),
		Logger:       &log,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	mode := cfg.MustGet("mode").String()
	log.Debug().Str("mode", mode).Uint16("addr", adc.Address()).Msg("starting")

	err = run(ctx, adc, mode, channels, cfg.MustGet("scan.interval").Duration())
	err = multierr.Combine(err, b.Close())
	if err != nil {
		log.Fatal().Err(err).Str("mode", mode).Msg("ads1119 failed")
	}
}

func run(ctx context.Context, adc *ads1119.ADS1119, mode string, channels []ads1119.Channel, interval time.Duration) error {
	switch mode {
	case "read":
		for _, ch := range channels {
			v, err := adc.ReadChannelVoltageContext(ctx, ch)
			if err != nil {
				return fmt.Errorf("%s: %w", ch, err)
			}
			log.Info().Stringer("channel", ch).Float64("volts", v).Msgf("%s: %.5fV", ch, v)
		}
		return nil

	case "scan":
		cs, err := adc.ScanChannels(ctx, interval, func(s ads1119.Sample) {
			log.Info().
				Stringer("channel", s.Channel).
				Int16("code", s.Code).
				Float64("volts", s.Volts).
				Msgf("%s: %.5fV", s.Channel, s.Volts)
		}, channels...)
		if err != nil {
			return err
		}
		if err = cs.Wait(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		cs.Stop()
		return cs.Wait(context.Background())

	case "status":
		ready, err := adc.ReadStatus()
		if err != nil {
			return err
		}
		log.Info().Bool("drdy", ready).Msg("ADS1119 status")
		return nil

	case "regs":
		regs, err := adc.Registers()
		if err != nil {
			return err
		}
		values := make(map[string]string, len(regs))
		for reg, val := range regs {
			values[reg.String()] = fmt.Sprintf("0x%02X", val)
		}
		log.Info().Any("values", values).
			Stringer("config", ads1119.DecodeConfig(regs[ads1119.RegCONFIG])).
			Msg("ADS1119 Registers")
		return nil

	case "reset":
		if err := adc.Reset(); err != nil {
			return err
		}
		log.Info().Msg("reset ADS1119")
		return nil

	default:
		return fmt.Errorf("unknown mode %q (want read, scan, status, regs or reset)", mode)
	}
}

func openBus(cfg *config.Config) (bus, error) {
	switch backend := cfg.MustGet("backend").String(); backend {
	case "i2cdev":
		name := cfg.MustGet("bus").String()
		speed := physic.Frequency(cfg.MustGet("bus.khz").Int()) * physic.KiloHertz
		b, err := i2cdev.Open(name, speed)
		if err != nil {
			return nil, err
		}
		log.Info().Str("bus", b.String()).Msg("opened I2C bus")
		return b, nil

	case "ft232h":
		ft, err := ft232h.Connect(ft232h.ByIndex(cfg.MustGet("ft232h.index").Int()))
		if err != nil {
			return nil, err
		}
		log.Info().Any("info", ft.Info()).Msgf("connected to FT232H: %s", ft)
		return ft, nil

	default:
		return nil, fmt.Errorf("unknown backend %q (want i2cdev or ft232h)", backend)
	}
}

func parseChannels(list string) ([]ads1119.Channel, error) {
	var channels []ads1119.Channel
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		ch, err := ads1119.ParseChannel(name)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	if len(channels) == 0 {
		return ads1119.Channels(), nil
	}
	return channels, nil
}

func loadConfig() *config.Config {
	def := ads1119.DefaultConfig()
	defaultConfig := map[string]interface{}{
		"mode":          "read",
		"backend":       "i2cdev",
		"bus":           "",
		"bus.khz":       100,
		"ft232h.index":  0,
		"address":       def.Address,
		"channels":      "AN0,AN1,AN2,AN3",
		"poll.attempts": def.PollAttempts,
		"poll.interval": def.PollInterval.String(),
		"scan.interval": "500ms",
		"log.level":     "info",
	}
	d := dict.New(dict.WithMap(defaultConfig))
	flags := []pflag.Flag{
		{Short: 'c', Name: "config-file"},
		{Short: 'm', Name: "mode"},
	}
	cfg := config.New(
		pflag.New(pflag.WithFlags(flags)),
		env.New(env.WithEnvPrefix("ADS1119_")),
		config.WithDefault(d))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "ads1119.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust)
	return cfg
}
