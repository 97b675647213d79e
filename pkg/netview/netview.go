package netview

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cuemby/hutch/pkg/apierr"
	"github.com/cuemby/hutch/pkg/log"
	"github.com/cuemby/hutch/pkg/metrics"
	"github.com/cuemby/hutch/pkg/types"
)

// DataSource is the network collaborator the assembler reads from. A nil
// entry in InstanceNetworks means the collaborator has no data for that
// network; a nil IPs slice on a non-nil entry means the field is missing,
// which is malformed (an empty-but-present field is a zero-length slice).
type DataSource interface {
	InstanceNetworks(ctx context.Context, instanceID int) ([]*types.NetworkInfo, error)
	FloatingIPs(ctx context.Context, fixedAddr string) ([]string, error)
}

// Policy selects how malformed per-network data is handled.
type Policy string

const (
	// PolicyPropagate fails the whole build on the first malformed
	// network. This is the default.
	PolicyPropagate Policy = "propagate"

	// PolicySkip logs malformed networks and leaves them out of the view.
	PolicySkip Policy = "skip-and-log"
)

// Config carries the knobs the assembler reads. Both are injected here
// rather than read from process-wide state at call time.
type Config struct {
	UseIPv6 bool
	Policy  Policy
}

// Assembler composes raw per-network collaborator data into a NetworkView.
type Assembler struct {
	source DataSource
	cfg    Config
	logger zerolog.Logger
}

// NewAssembler creates an assembler over the given data source. An unset
// policy defaults to PolicyPropagate.
func NewAssembler(source DataSource, cfg Config) *Assembler {
	if cfg.Policy == "" {
		cfg.Policy = PolicyPropagate
	}
	return &Assembler{
		source: source,
		cfg:    cfg,
		logger: log.WithComponent("netview"),
	}
}

// Build assembles the address view for an instance. Every fixed IPv4
// address is emitted, floating addresses are resolved per fixed address,
// and IPv6 addresses are appended when enabled. Collaborator failures
// always propagate; malformed network data propagates or is skipped
// according to the configured policy.
func (a *Assembler) Build(ctx context.Context, instanceID int) (types.NetworkView, error) {
	infos, err := a.source.InstanceNetworks(ctx, instanceID)
	if err != nil {
		return types.NetworkView{}, fmt.Errorf("failed to fetch instance networks: %w", err)
	}

	var view types.NetworkView
	for _, info := range infos {
		if info == nil {
			continue
		}

		network, err := a.buildNetwork(ctx, info)
		if err != nil {
			var malformed *apierr.MalformedNetworkDataError
			if a.cfg.Policy == PolicySkip && errors.As(err, &malformed) {
				a.logger.Warn().Err(err).Msg("skipping malformed network data")
				metrics.NetworksSkipped.Inc()
				continue
			}
			return types.NetworkView{}, err
		}

		if replaced := view.Set(info.Label, network); replaced {
			// Labels are supposed to be unique; when they are not, the
			// later entry wins.
			a.logger.Debug().Str("label", info.Label).
				Msg("duplicate network label, keeping later entry")
		}
	}
	return view, nil
}

func (a *Assembler) buildNetwork(ctx context.Context, info *types.NetworkInfo) (types.Network, error) {
	if info.Label == "" {
		return types.Network{}, &apierr.MalformedNetworkDataError{Field: "label"}
	}
	if info.IPs == nil {
		return types.Network{}, &apierr.MalformedNetworkDataError{Label: info.Label, Field: "ips"}
	}

	network := types.Network{
		IPs:         []types.Address{},
		FloatingIPs: []types.Address{},
	}
	for _, ip := range info.IPs {
		network.IPs = append(network.IPs, types.Address{Addr: ip, Version: 4})

		floats, err := a.source.FloatingIPs(ctx, ip)
		if err != nil {
			return types.Network{}, fmt.Errorf("failed to resolve floating ips for %s: %w", ip, err)
		}
		for _, addr := range floats {
			network.FloatingIPs = append(network.FloatingIPs, types.Address{Addr: addr, Version: 4})
		}
	}
	if a.cfg.UseIPv6 {
		for _, ip := range info.IP6s {
			network.IPs = append(network.IPs, types.Address{Addr: ip, Version: 6})
		}
	}
	return network, nil
}
