package repo

// InMemoryMetricsRepository derives the stock summary from the in-memory
// product and stock log repositories.
type InMemoryMetricsRepository struct {
	productRepo  ProductRepository
	stockLogRepo *InMemoryStockLogRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	stockLogRepo *InMemoryStockLogRepository,
) {
	i.productRepo = productRepo
	i.stockLogRepo = stockLogRepo
}

// GetStockSummary implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetStockSummary() (StockSummary, error) {
	var s StockSummary

	products, err := i.productRepo.GetAll()
	if err != nil {
		return s, err
	}

	s.TotalProducts = len(products)
	for _, p := range products {
		switch {
		case p.Stock == 0:
			s.OutOfStock++
		case p.LowStock():
			s.LowStock++
		default:
			s.InStock++
		}
		if p.Discount > 0 {
			s.Discounted++
		}
	}

	if i.stockLogRepo != nil {
		i.stockLogRepo.mu.Lock()
		s.Adjustments = len(i.stockLogRepo.movements)
		i.stockLogRepo.mu.Unlock()
	}

	return s, nil
}
