package model

import (
	"testing"

	"github.com/bsv-blockchain/go-bt/v2/chainhash"
	bec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/txhandler/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(t *testing.T) (*Transaction, *bec.PrivateKey) {
	t.Helper()

	privateKey, publicKey := bec.PrivateKeyFromBytes([]byte("THIS_IS_A_DETERMINISTIC_PRIVATE_KEY"))

	prev := chainhash.HashH([]byte("previous"))

	tx := NewTransaction(
		[]*Input{
			{PrevTxID: prev, PrevIndex: 0},
			{PrevTxID: prev, PrevIndex: 1},
		},
		[]*Output{
			{Value: 60, Owner: publicKey.Compressed()},
			{Value: 30, Owner: publicKey.Compressed()},
		},
	)

	return tx, privateKey
}

func TestSignablePayload(t *testing.T) {
	tx, _ := newTestTransaction(t)

	p0 := tx.SignablePayload(0)
	p1 := tx.SignablePayload(1)

	require.NotNil(t, p0)
	require.NotNil(t, p1)
	assert.NotEqual(t, p0, p1)
	assert.Equal(t, tx.inputs[0].PrevTxID[:], p0[:chainhash.HashSize])

	assert.Nil(t, tx.SignablePayload(-1))
	assert.Nil(t, tx.SignablePayload(2))

	t.Run("stable", func(t *testing.T) {
		assert.Equal(t, p0, tx.SignablePayload(0))
	})

	t.Run("signatures are not covered", func(t *testing.T) {
		tx.inputs[1].Signature = []byte{0x30, 0x01}
		assert.Equal(t, p0, tx.SignablePayload(0))
		tx.inputs[1].Signature = nil
	})

	t.Run("outputs are covered", func(t *testing.T) {
		tx.outputs[0].Value = 61
		assert.NotEqual(t, p0, tx.SignablePayload(0))
		tx.outputs[0].Value = 60
	})

	t.Run("negative values encode distinctly", func(t *testing.T) {
		assert.NotEqual(t, zigzag(-1), zigzag(1))
		assert.Equal(t, uint64(0), zigzag(0))
		assert.Equal(t, uint64(1), zigzag(-1))
		assert.Equal(t, uint64(2), zigzag(1))
	})
}

func TestSign(t *testing.T) {
	tx, privateKey := newTestTransaction(t)

	unsignedHash := tx.Hash()

	require.NoError(t, tx.Sign(0, privateKey))
	require.NotNil(t, tx.inputs[0].Signature)

	signature, err := bec.ParseDERSignature(tx.inputs[0].Signature)
	require.NoError(t, err)
	assert.True(t, signature.Verify(chainhash.DoubleHashB(tx.SignablePayload(0)), privateKey.PubKey()))

	// hash covers the signature, so signing moves it
	assert.NotEqual(t, unsignedHash, tx.Hash())

	err = tx.Sign(5, privateKey)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestHash(t *testing.T) {
	tx1, _ := newTestTransaction(t)
	tx2, _ := newTestTransaction(t)

	// identity is the content, not the pointer
	assert.Equal(t, tx1.Hash(), tx2.Hash())
	assert.Equal(t, chainhash.DoubleHashH(tx1.Bytes()), tx1.Hash())
	assert.Equal(t, tx1.Hash().String(), tx1.TxID())

	tx3 := NewTransaction(tx1.Inputs(), []*Output{{Value: 1}})
	assert.NotEqual(t, tx1.Hash(), tx3.Hash())
}

func TestOutputOutpoint(t *testing.T) {
	tx, _ := newTestTransaction(t)

	op, err := tx.OutputOutpoint(1)
	require.NoError(t, err)
	assert.Equal(t, Outpoint{TxID: tx.Hash(), Index: 1}, op)

	_, err = tx.OutputOutpoint(2)
	require.Error(t, err)
}

func TestOutputClone(t *testing.T) {
	out := &Output{Value: 10, Owner: []byte{1, 2, 3}}
	c := out.Clone()

	require.True(t, out.Equal(c))

	c.Owner[0] = 9
	assert.Equal(t, byte(1), out.Owner[0])
	assert.False(t, out.Equal(c))

	var nilOut *Output
	assert.Nil(t, nilOut.Clone())
	assert.True(t, nilOut.Equal(nil))
	assert.False(t, out.Equal(nil))
}

func TestInputOutpoint(t *testing.T) {
	h := chainhash.HashH([]byte("x"))
	in := &Input{PrevTxID: h, PrevIndex: 4}
	assert.Equal(t, NewOutpoint(h, 4), in.Outpoint())
}

func TestNilEntries(t *testing.T) {
	h := chainhash.HashH([]byte("prev"))
	in := &Input{PrevTxID: h, PrevIndex: 1}
	out := &Output{Value: 5, Owner: []byte{2}}

	nilInput := NewTransaction([]*Input{nil}, []*Output{out})
	nilOutput := NewTransaction([]*Input{in}, []*Output{nil})
	noOutputs := NewTransaction([]*Input{in}, nil)

	require.NotPanics(t, func() {
		assert.NotEqual(t, nilInput.Hash(), nilOutput.Hash())
		assert.NotEqual(t, nilOutput.Hash(), noOutputs.Hash())
	})

	assert.Nil(t, nilInput.SignablePayload(0))
	assert.NotNil(t, nilOutput.SignablePayload(0))
	assert.Error(t, nilInput.Sign(0, nil))
}

func TestNewTransactionCopiesSlices(t *testing.T) {
	h := chainhash.HashH([]byte("prev"))
	inputs := []*Input{{PrevTxID: h}}
	outputs := []*Output{{Value: 1}}

	tx := NewTransaction(inputs, outputs)
	hash := tx.Hash()

	inputs[0] = &Input{PrevTxID: h, PrevIndex: 9}
	outputs[0] = nil

	assert.Equal(t, uint32(0), tx.Inputs()[0].PrevIndex)
	assert.NotNil(t, tx.Outputs()[0])
	assert.Equal(t, hash, chainhash.DoubleHashH(tx.Bytes()))
}
