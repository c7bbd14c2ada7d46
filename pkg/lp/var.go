package lp

import "strconv"

// Var identifies a program variable. Implementations are small comparable
// value types; Name produces the serialized identifier and is the only place
// a variable's wire name is spelled out.
type Var interface {
	Name() string
}

// Precedes is the binary ordering variable x_i_j: 1 when node i is placed
// before node j on their common layer.
type Precedes struct {
	I, J int
}

func (v Precedes) Name() string {
	return "x_" + strconv.Itoa(v.I) + "_" + strconv.Itoa(v.J)
}

// Position is the integer position variable p_node_layer, the 0-based slot
// of a node on its layer.
type Position struct {
	Node, Layer int
}

func (v Position) Name() string {
	return "p_" + strconv.Itoa(v.Node) + "_" + strconv.Itoa(v.Layer)
}

// Crossing is the binary indicator c_i_j_k_l: 1 when edge (i,j) crosses
// edge (k,l) in their shared channel. Builders keep I < K and J != L.
type Crossing struct {
	I, J, K, L int
}

func (v Crossing) Name() string {
	return "c_" + strconv.Itoa(v.I) + "_" + strconv.Itoa(v.J) +
		"_" + strconv.Itoa(v.K) + "_" + strconv.Itoa(v.L)
}

// EdgeMark pins edge (u,v) into the variable namespace so solution decoding
// recovers edges that participate in no crossing. It reuses the crossing
// naming with both operands equal, a shape no true crossing produces.
type EdgeMark struct {
	U, V int
}

func (v EdgeMark) Name() string {
	return Crossing{I: v.U, J: v.V, K: v.U, L: v.V}.Name()
}

// RawStretch is the signed displacement z_u_v of edge (u,v) between the
// normalized coordinates of its endpoints, bounded to [-1, 1].
type RawStretch struct {
	U, V int
}

func (v RawStretch) Name() string {
	return "z_" + strconv.Itoa(v.U) + "_" + strconv.Itoa(v.V)
}

// Stretch is s_u_v, the absolute value of [RawStretch] for edge (u,v).
type Stretch struct {
	U, V int
}

func (v Stretch) Name() string {
	return "s_" + strconv.Itoa(v.U) + "_" + strconv.Itoa(v.V)
}

// SignBit is the binary b_u_v selecting which side of the absolute-value
// linearization binds for edge (u,v).
type SignBit struct {
	U, V int
}

func (v SignBit) Name() string {
	return "b_" + strconv.Itoa(v.U) + "_" + strconv.Itoa(v.V)
}

// Distance is d_u_v_i. Index 0 is the absolute position offset of edge
// (u,v); indexes 1 and up linearize the offset's square.
type Distance struct {
	U, V, I int
}

func (v Distance) Name() string {
	return "d_" + strconv.Itoa(v.U) + "_" + strconv.Itoa(v.V) +
		"_" + strconv.Itoa(v.I)
}

// Nonvert is q_u_v, the linearized squared position offset of edge (u,v).
type Nonvert struct {
	U, V int
}

func (v Nonvert) Name() string {
	return "q_" + strconv.Itoa(v.U) + "_" + strconv.Itoa(v.V)
}

// Scalar is a named aggregate such as "total" or "bn_stretch", used for
// linear objectives and their caps.
type Scalar string

func (v Scalar) Name() string { return string(v) }
