package ast

import "testing"

func TestWalkVisitsNestedExpressions(t *testing.T) {
	tree := ExprBinaryOp{
		Op:   OpAdd,
		Left: ExprNumber{Base: 10, Digits: "1"},
		Right: ExprUnaryOp{
			Op:      OpNegate,
			Operand: ExprNumber{Base: 10, Digits: "2"},
		},
	}

	var visited []Expression
	Walk(tree, func(e Expression) bool {
		visited = append(visited, e)
		return true
	})

	if len(visited) != 4 {
		t.Fatalf("expected 4 visited nodes, got %d", len(visited))
	}
	if _, ok := visited[0].(ExprBinaryOp); !ok {
		t.Fatalf("expected root visited first, got %T", visited[0])
	}
}

func TestWalkStopsDescendingWhenVisitReturnsFalse(t *testing.T) {
	tree := ExprBinaryOp{
		Op:   OpAdd,
		Left: ExprNumber{Base: 10, Digits: "1"},
		Right: ExprUnaryOp{
			Op:      OpNegate,
			Operand: ExprNumber{Base: 10, Digits: "2"},
		},
	}

	var count int
	Walk(tree, func(e Expression) bool {
		count++
		return false
	})

	if count != 1 {
		t.Fatalf("expected Walk to stop after the root, visited %d nodes", count)
	}
}

func TestWalkOnNilExpressionIsNoOp(t *testing.T) {
	called := false
	Walk(nil, func(e Expression) bool {
		called = true
		return true
	})
	if called {
		t.Fatal("Walk should not invoke visit on a nil expression")
	}
}
