package spirv

import (
	"bytes"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// TranslatorBinary is the name of the external SPIR-V to LLVM-IR translator
// searched for in PATH.
const TranslatorBinary = "llvm-spirv"

// TranslatorEnv is the environment variable that overrides the translator
// binary path.
const TranslatorEnv = "PORTCL_LLVM_SPIRV"

// Translator converts a SPIR-V file into intermediate representation.
// It is injected into the program loaders so tests can substitute a fake.
type Translator interface {
	// Translate reverse-translates the SPIR-V module at inputPath and
	// writes the resulting intermediate representation to outputPath.
	// It blocks until translation finishes; there is no timeout.
	Translate(outputPath, inputPath string) error
}

// CommandTranslator runs llvm-spirv as a blocking subprocess.
type CommandTranslator struct {
	binPath string
}

// Compile-time check.
var _ Translator = (*CommandTranslator)(nil)

// NewCommandTranslator locates the translator binary and returns a
// CommandTranslator. The PORTCL_LLVM_SPIRV environment variable overrides
// the binary looked up in PATH.
func NewCommandTranslator() (*CommandTranslator, error) {
	binPath, err := findTranslator()
	if err != nil {
		return nil, err
	}
	return &CommandTranslator{binPath: binPath}, nil
}

// Available reports whether a translator binary is installed. When it
// returns false the runtime has no SPIR-V support and portable binaries
// cannot be ingested.
func Available() bool {
	_, err := findTranslator()
	return err == nil
}

func findTranslator() (string, error) {
	if fromEnv := os.Getenv(TranslatorEnv); fromEnv != "" {
		return fromEnv, nil
	}
	binPath, err := exec.LookPath(TranslatorBinary)
	if err != nil {
		return "", errors.Wrapf(err, "cannot find %q binary in PATH, needed to translate "+
			"SPIR-V binaries -- install the llvm-spirv converter or set %s", TranslatorBinary, TranslatorEnv)
	}
	klog.V(2).Infof("using llvm-spirv from %q", binPath)
	return binPath, nil
}

// Translate implements Translator, invoking
// `llvm-spirv -r -o <outputPath> <inputPath>`.
func (t *CommandTranslator) Translate(outputPath, inputPath string) error {
	cmd := exec.Command(t.binPath, "-r", "-o", outputPath, inputPath)
	if cmd.Err != nil {
		return errors.Wrapf(cmd.Err, "cannot execute %q", cmd)
	}
	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf
	klog.V(1).Infof("translating SPIR-V: %q", cmd)
	if err := cmd.Run(); err != nil {
		err = errors.Wrapf(err, "failed executing %q", cmd)
		return errors.WithMessagef(err, "STDERR captured:\n%s", stderrBuf.String())
	}
	return nil
}
