package cache

import (
	"sort"

	"servihub/internal/domain/entity"
)

// Mutation names a write performed by a use case.
type Mutation string

const (
	MutationProfileRegister        Mutation = "profile.register"
	MutationProfileUpdate          Mutation = "profile.update"
	MutationTechnicianSetActive    Mutation = "technician.set-active"
	MutationCategoryWrite          Mutation = "category.write"
	MutationSpecialtyWrite         Mutation = "specialty.write"
	MutationServiceWrite           Mutation = "service.write"
	MutationServiceRequestCreate   Mutation = "service-request.create"
	MutationServiceRequestAdvance  Mutation = "service-request.advance"
	MutationServiceRequestComplete Mutation = "service-request.complete"
	MutationServiceRequestCancel   Mutation = "service-request.cancel"
	MutationProductWrite           Mutation = "product.write"
	MutationOrderCreate            Mutation = "order.create"
	MutationOrderStatus            Mutation = "order.status"
	MutationOrderCancel            Mutation = "order.cancel"
	MutationDeliveryCreate         Mutation = "delivery.create"
	MutationDeliveryAdvance        Mutation = "delivery.advance"
	MutationDeliveryComplete       Mutation = "delivery.complete"
	MutationDeliveryPosition       Mutation = "delivery.position"
	MutationWalletDeposit          Mutation = "wallet.deposit"
	MutationSettingsUpdate         Mutation = "settings.update"
	MutationTicketWrite            Mutation = "ticket.write"
	MutationDeviceWrite            Mutation = "device.write"
)

// Graph is the invalidation graph: for each mutation and each changed table, the key names that become stale.
type Graph struct {
	mutations map[Mutation][]Name
	tables    map[string][]Name
}

// NewGraph builds a graph from explicit edges. Duplicate names in an edge are collapsed.
func NewGraph(mutations map[Mutation][]Name, tables map[string][]Name) *Graph {
	g := &Graph{
		mutations: make(map[Mutation][]Name, len(mutations)),
		tables:    make(map[string][]Name, len(tables)),
	}
	for m, names := range mutations {
		g.mutations[m] = dedupe(names)
	}
	for t, names := range tables {
		g.tables[t] = dedupe(names)
	}

	return g
}

// DefaultGraph returns the marketplace invalidation graph.
func DefaultGraph() *Graph {
	return NewGraph(map[Mutation][]Name{
		MutationProfileRegister:        {Profiles, Technicians},
		MutationProfileUpdate:          {Profiles, TechnicianProfile, Technicians},
		MutationTechnicianSetActive:    {TechnicianProfile, Technicians},
		MutationCategoryWrite:          {Categories, Services},
		MutationSpecialtyWrite:         {Specialties, Technicians, ServiceRequests},
		MutationServiceWrite:           {Services},
		MutationServiceRequestCreate:   {ServiceRequests},
		MutationServiceRequestAdvance:  {ServiceRequests},
		MutationServiceRequestComplete: {ServiceRequests, WalletTransactions, TechnicianProfile, Technicians, PendingPayments, Financials},
		MutationServiceRequestCancel:   {ServiceRequests, Financials},
		MutationProductWrite:           {Products},
		MutationOrderCreate:            {Orders, Products, Financials},
		MutationOrderStatus:            {Orders},
		MutationOrderCancel:            {Orders, Products, Financials},
		MutationDeliveryCreate:         {Deliveries, Orders},
		MutationDeliveryAdvance:        {Deliveries},
		MutationDeliveryComplete:       {Deliveries, Orders, Financials},
		MutationDeliveryPosition:       {Deliveries},
		MutationWalletDeposit:          {WalletTransactions, TechnicianProfile, Technicians, PendingPayments, Financials},
		MutationSettingsUpdate:         {PlatformSettings, PendingPayments},
		MutationTicketWrite:            {SupportTickets},
		MutationDeviceWrite:            {Devices},
	}, map[string][]Name{
		entity.TableServiceRequests:    {ServiceRequests},
		entity.TableDeliveries:         {Deliveries},
		entity.TableOrders:             {Orders},
		entity.TableProducts:           {Products},
		entity.TableProfiles:           {Profiles, TechnicianProfile},
		entity.TableTechnicians:        {TechnicianProfile, Technicians, PendingPayments},
		entity.TableWalletTransactions: {WalletTransactions, Financials},
		entity.TableSupportTickets:     {SupportTickets},
		entity.TablePlatformSettings:   {PlatformSettings},
		entity.TableCategories:         {Categories},
		entity.TableSpecialties:        {Specialties},
		entity.TableServices:           {Services},
		entity.TableDevices:            {Devices},
	})
}

// DependentsOf returns the key names made stale by a mutation, each exactly once.
func (g *Graph) DependentsOf(m Mutation) []Name {
	return append([]Name(nil), g.mutations[m]...)
}

// DependentsOfTable returns the key names made stale by a change on a table.
func (g *Graph) DependentsOfTable(table string) []Name {
	return append([]Name(nil), g.tables[table]...)
}

// Mutations lists the mutations known to the graph, sorted.
func (g *Graph) Mutations() []Mutation {
	out := make([]Mutation, 0, len(g.mutations))
	for m := range g.mutations {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func dedupe(names []Name) []Name {
	seen := make(map[Name]struct{}, len(names))
	out := make([]Name, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	return out
}
