package cache

import (
	"testing"

	"servihub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGraph_WalletDeposit(t *testing.T) {
	deps := DefaultGraph().DependentsOf(MutationWalletDeposit)

	assert.Subset(t, deps, []Name{WalletTransactions, TechnicianProfile, Technicians, PendingPayments})
}

func TestDefaultGraph_EdgesUseKnownNamesOnce(t *testing.T) {
	known := make(map[Name]bool, len(AllNames))
	for _, n := range AllNames {
		known[n] = true
	}

	g := DefaultGraph()
	for _, m := range g.Mutations() {
		deps := g.DependentsOf(m)
		assert.NotEmpty(t, deps, "mutation %s has no dependents", m)

		seen := make(map[Name]bool)
		for _, n := range deps {
			assert.True(t, known[n], "mutation %s points at unknown key %s", m, n)
			assert.False(t, seen[n], "mutation %s lists %s twice", m, n)
			seen[n] = true
		}
	}
}

func TestDefaultGraph_RealtimeTables(t *testing.T) {
	g := DefaultGraph()

	assert.Equal(t, []Name{ServiceRequests}, g.DependentsOfTable(entity.TableServiceRequests))
	assert.Equal(t, []Name{Deliveries}, g.DependentsOfTable(entity.TableDeliveries))
	assert.Empty(t, g.DependentsOfTable("unknown"))
}

func TestNewGraph_CollapsesDuplicates(t *testing.T) {
	g := NewGraph(map[Mutation][]Name{"x": {Orders, Orders, Products}}, nil)

	assert.Equal(t, []Name{Orders, Products}, g.DependentsOf("x"))
}
