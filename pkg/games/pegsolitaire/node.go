package pegsolitaire

type Outcome int

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "lose"
}

// Search node: a board and the index of the move currently explored
type Node struct {
	layout     *Layout
	board      Board
	legalMoves []Move
	moveIndex  int
	won        bool
}

func NewNode(layout *Layout, board Board) *Node {
	return &Node{
		layout:     layout,
		board:      board,
		legalMoves: layout.LegalMoves(board),
	}
}

func (n *Node) Board() Board {
	return n.board
}

// Move leading to the child being explored, false once every move was tried
func (n *Node) CurrentMove() (Move, bool) {
	if n.moveIndex >= len(n.legalMoves) {
		return Move{}, false
	}
	return n.legalMoves[n.moveIndex], true
}

func (n *Node) RequestNextChild() (*Node, bool) {
	m, ok := n.CurrentMove()
	if !ok {
		return nil, false
	}
	return NewNode(n.layout, n.board.Apply(m)), true
}

func (n *Node) OnChildPruned(_ *Node, value Outcome) {
	n.moveIndex++
	if value == Win {
		n.won = true
	}
}

// Win with a single peg left, or when some move leads to a win
func (n *Node) OnAllChildrenPruned() Outcome {
	if n.won || n.board.CountPegs() == 1 {
		return Win
	}
	return Lose
}

func boardKey(n *Node) Board {
	return n.board
}
