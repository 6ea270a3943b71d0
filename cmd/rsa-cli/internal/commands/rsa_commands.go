package commands

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cipherkit/rsa-lib/core/rsa"
	cs_rsa "github.com/cipherkit/rsa-lib/pkg/common/cryptosuite/rsa"
	sw_rsa "github.com/cipherkit/rsa-lib/pkg/cryptosuite/sw/rsa"
	"github.com/cipherkit/rsa-lib/pkg/keystore"
	"github.com/cipherkit/rsa-lib/pkg/vault"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	keyManager cs_rsa.RSAKeyManager
	logger     *logrus.Logger
}

// NewRSACommandHandler initializes a handler backed by an in-memory keystore.
func NewRSACommandHandler() *RSACommandHandler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ks := keystore.NewInMemoryKeystore(vault.NewInMemoryVault())

	return &RSACommandHandler{
		keyManager: sw_rsa.NewRSAKeyManager(ks),
		logger:     logger,
	}
}

// GenerateKeyCmd generates an RSA key pair and prints its identifiers.
func (h *RSACommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		h.logger.Errorf("invalid bits flag: %v", err)
		return
	}
	exponent, err := cmd.Flags().GetUint64("exponent")
	if err != nil {
		h.logger.Errorf("invalid exponent flag: %v", err)
		return
	}

	cfg := &rsa.Config{BitLen: bits}
	if exponent != 0 {
		cfg.PublicExponent = new(saferith.Nat).SetUint64(exponent)
	}

	keyRef := uuid.New()
	h.logger.Infof("generating key pair %s (%d-bit primes)", keyRef, bits)

	key, err := h.keyManager.GenerateKey(cmd.Context(), cfg)
	if err != nil {
		h.logger.Errorf("%v", err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"ref": keyRef,
		"ski": hex.EncodeToString(key.SKI()),
		"e":   key.PublicKeyRaw().E().Big().String(),
	}).Info("key pair generated")
}

// DemoCmd runs the library end-to-end: two key pairs, text and integer
// encryption round-trips, and a signature round-trip.
func (h *RSACommandHandler) DemoCmd(cmd *cobra.Command, _ []string) {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		h.logger.Errorf("invalid bits flag: %v", err)
		return
	}

	ctx := cmd.Context()

	// key pair A: random public exponent
	keyA, err := h.keyManager.GenerateKey(ctx, &rsa.Config{BitLen: bits})
	if err != nil {
		h.logger.Errorf("generate key A: %v", err)
		return
	}
	h.logger.Infof("key pair A: ski=%s", hex.EncodeToString(keyA.SKI()))

	// key pair B: e = 65537
	keyB, err := h.keyManager.GenerateKey(ctx, &rsa.Config{
		BitLen:         bits,
		PublicExponent: new(saferith.Nat).SetUint64(65537),
	})
	if err != nil {
		h.logger.Errorf("generate key B: %v", err)
		return
	}
	h.logger.Infof("key pair B: ski=%s", hex.EncodeToString(keyB.SKI()))

	// text round-trip under B
	ct, err := keyB.Encrypt(rsa.TextMessage("hej"))
	if err != nil {
		h.logger.Errorf("encrypt text: %v", err)
		return
	}
	pt, err := h.keyManager.Decrypt(keyB.SKI(), ct)
	if err != nil {
		h.logger.Errorf("decrypt text: %v", err)
		return
	}
	h.logger.Infof("text round-trip: %q -> %q", "hej", pt.Text())

	// integer round-trip under A
	ctInt, err := keyA.Encrypt(rsa.IntMessage(new(saferith.Nat).SetUint64(1488)))
	if err != nil {
		h.logger.Errorf("encrypt integer: %v", err)
		return
	}
	ptInt, err := h.keyManager.Decrypt(keyA.SKI(), ctInt)
	if err != nil {
		h.logger.Errorf("decrypt integer: %v", err)
		return
	}
	h.logger.Infof("integer round-trip: 1488 -> %s", ptInt.Int().Big().String())

	// signature round-trip under A
	sig, err := h.keyManager.Sign(keyA.SKI(), "Alice signatur")
	if err != nil {
		h.logger.Errorf("sign: %v", err)
		return
	}
	recovered, err := keyA.Verify(sig)
	if err != nil {
		h.logger.Errorf("verify: %v", err)
		return
	}
	h.logger.Infof("signature round-trip: %q -> %q", "Alice signatur", recovered)
}

// InitRSACommands registers the RSA commands with the root command.
func InitRSACommands(rootCmd *cobra.Command) error {
	handler := NewRSACommandHandler()

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeyCmd,
	}
	generateCmd.Flags().Int("bits", rsa.DefaultBitLen, "Bit length of each prime")
	generateCmd.Flags().Uint64("exponent", 0, "Public exponent (0 draws a random one)")
	rootCmd.AddCommand(generateCmd)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run key generation, encryption and signing end-to-end",
		Run:   handler.DemoCmd,
	}
	demoCmd.Flags().Int("bits", rsa.DefaultBitLen, "Bit length of each prime")
	rootCmd.AddCommand(demoCmd)

	return nil
}
