package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/toolcfg/internal/adapters/anvil"
	"github.com/trebuchet-org/toolcfg/internal/adapters/blockchain"
	"github.com/trebuchet-org/toolcfg/internal/adapters/fs"
	"github.com/trebuchet-org/toolcfg/internal/adapters/verification"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// ChainSet provides RPC and local-node implementations
var ChainSet = wire.NewSet(
	blockchain.NewProbe,
	wire.Bind(new(usecase.ChainProbe), new(*blockchain.Probe)),

	anvil.NewRunner,
	wire.Bind(new(usecase.ForkRunner), new(*anvil.Runner)),
)

// VerificationSet provides the verification service client
var VerificationSet = wire.NewSet(
	verification.NewEtherscanChecker,
	wire.Bind(new(usecase.VerifierChecker), new(*verification.EtherscanChecker)),
)

// AllAdapters includes every adapter set
var AllAdapters = wire.NewSet(
	FSSet,
	ChainSet,
	VerificationSet,
)
