package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sha3Vector      = "4a223fa925a250eae6701f132f153ec0eeb869bc4a2aec386e2c929527290d3553fd1f9bbd41be9039f77a5a902548991c2976c30dca84df9ec8427ad4aa4949"
	whirlpoolVector = "c9b9baeb725f00211f3807752fcfad344927be6ac1588996518193f6c003946118d1bd2dd2f67ba06f211eee26fe2fc162d4b4fe4748b9c9beed81fe865cc409"
	ripemdVector    = "7a6ec22a4902a79d6635f86445980ef4c13254c5"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHashDefault(t *testing.T) {
	out, err := run(t, "", "hash", "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, sha3Vector+"\n", out)
}

func TestHashAlgorithms(t *testing.T) {
	out, err := run(t, "", "hash", "-a", "whirlpool", "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, whirlpoolVector+"\n", out)

	out, err = run(t, "", "hash", "-a", "all", "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, "ripemd160:"+ripemdVector+"\nsha3-512:"+sha3Vector+"\nwhirlpool:"+whirlpoolVector+"\n", out)

	_, err = run(t, "", "hash", "-a", "md5", "x")
	require.EqualError(t, err, "unknown algorithm: md5")
}

func TestHashStdin(t *testing.T) {
	out, err := run(t, "12345abcde", "hash", "-a", "ripemd160")
	require.NoError(t, err)
	assert.Equal(t, ripemdVector+"\n", out)
}

func TestHashAlgorithmFromEnv(t *testing.T) {
	t.Setenv("LOLIHASH_ALGORITHM", "ripemd160")
	out, err := run(t, "", "hash", "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, ripemdVector+"\n", out)
}

func TestHashAlgorithmFromConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "lolihash.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("algorithm: whirlpool\n"), 0600))

	out, err := run(t, "", "--config", cfg, "hash", "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, whirlpoolVector+"\n", out)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	outFile := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("12345abcde\r\n\n"), 0600))

	_, err := run(t, "", "batch", "-f", in, "-a", "ripemd160", "-o", outFile)
	require.NoError(t, err)

	got, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "ripemd160:"+ripemdVector+"\nripemd160:9c1185a5c5e9fc54612808977ee8f548b2258d31\n", string(got))

	out, err := run(t, "12345abcde\n", "batch", "-f", "-", "-a", "sha3-512")
	require.NoError(t, err)
	assert.Equal(t, "sha3-512:"+sha3Vector+"\n", out)
}

func TestBatchWriteError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	_, err := run(t, "12345abcde\n", "batch", "-f", "-", "-o", "/dev/full")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write results")
}

func TestVerify(t *testing.T) {
	out, err := run(t, "", "verify", "-a", "ripemd160", "-d", strings.ToUpper(ripemdVector), "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, "match\n", out)

	out, err = run(t, "", "verify", "-d", ripemdVector, "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, "match\n", out)

	// whirlpool shares its digest length with sha3-512
	out, err = run(t, "", "verify", "-d", whirlpoolVector, "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, "match\n", out)

	out, err = run(t, "", "verify", "-d", sha3Vector, "12345abcde")
	require.NoError(t, err)
	assert.Equal(t, "match\n", out)

	out, err = run(t, "", "verify", "-d", whirlpoolVector, "nope")
	require.ErrorIs(t, err, errMismatch)
	assert.Equal(t, "mismatch\n", out)

	out, err = run(t, "", "verify", "-a", "whirlpool", "-d", whirlpoolVector, "nope")
	require.ErrorIs(t, err, errMismatch)
	assert.Equal(t, "mismatch\n", out)

	_, err = run(t, "", "verify", "-a", "ripemd160", "-d", "abc", "12345abcde")
	require.EqualError(t, err, "invalid digest: RIPEMD160 must be 40 hex chars")
}

func TestVerifyLatin1(t *testing.T) {
	// "héllo" encoded as latin1 hashes like its UTF-8 form
	out, err := run(t, "", "hash", "-a", "ripemd160", "héllo")
	require.NoError(t, err)
	want := strings.TrimSpace(out)

	out, err = run(t, "", "--encoding", "latin1", "verify", "-a", "ripemd160", "-d", want, "h\xe9llo")
	require.NoError(t, err)
	assert.Equal(t, "match\n", out)
}

func TestDetect(t *testing.T) {
	out, err := run(t, "", "detect", sha3Vector)
	require.NoError(t, err)
	assert.Equal(t, "sha3-512\nwhirlpool\n", out)

	_, err = run(t, "", "detect", "xyz")
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "Supported algorithms:\n  - ripemd160 (20 bytes)\n  - sha3-512 (64 bytes)\n  - whirlpool (64 bytes)\n", out)
}

func TestAdd(t *testing.T) {
	out, err := run(t, "", "add", "2", "2")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, err = run(t, "", "add", "1.5", "2")
	require.NoError(t, err)
	assert.Equal(t, "3.5\n", out)

	_, err = run(t, "", "add", "two", "2")
	require.EqualError(t, err, "not a number: two")
}

func TestBadLogFormat(t *testing.T) {
	_, err := run(t, "", "--log-format", "xml", "list")
	require.EqualError(t, err, `invalid log format "xml"`)
}
