package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
)

type Seeder struct {
	users   *UserService
	clients *ClientService
	repo    UserRepository
}

func NewSeeder(users *UserService, clients *ClientService, repo UserRepository) *Seeder {
	return &Seeder{
		users:   users,
		clients: clients,
		repo:    repo,
	}
}

// Run fills an empty database with demo accounts and clients. It does nothing
// when at least one user already exists.
func (s *Seeder) Run(ctx context.Context) error {
	n, err := s.repo.CountUsers(ctx)
	if err != nil {
		return err
	}

	if n > 0 {
		slog.InfoContext(ctx, "seed skipped", "users", n)
		return nil
	}

	_, err = s.users.Create(ctx, entity.CreateUserData{
		Name:     "Administrador",
		Email:    "admin@conectar.com",
		Password: "admin123",
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	regular, err := s.users.Create(ctx, entity.CreateUserData{
		Name:     "Usuário Regular",
		Email:    "user@conectar.com",
		Password: "user123",
		Role:     entity.RoleUser,
	})
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	clients := []entity.CreateClientData{
		{
			StoreFrontName: "Padaria do João",
			CNPJ:           "12.345.678/0001-90",
			CompanyName:    "João Silva Padaria LTDA",
			CEP:            "01234-567",
			Street:         "Rua das Flores",
			Neighborhood:   "Centro",
			City:           "São Paulo",
			State:          "SP",
			Number:         "123",
			Status:         entity.ClientStatusActive,
			Phone:          "(11) 99999-9999",
			Email:          "contato@padariadojoao.com",
			ContactPerson:  "João Silva",
			AssignedUserID: &regular.ID,
		},
		{
			StoreFrontName: "Farmácia Saúde",
			CNPJ:           "98.765.432/0001-10",
			CompanyName:    "Saúde Farmácia LTDA",
			CEP:            "20000-000",
			Street:         "Avenida Brasil",
			Neighborhood:   "Copacabana",
			City:           "Rio de Janeiro",
			State:          "RJ",
			Number:         "456",
			Status:         entity.ClientStatusActive,
			Phone:          "(21) 88888-8888",
			Email:          "contato@farmaciasaude.com",
			ContactPerson:  "Maria Santos",
		},
		{
			StoreFrontName: "Loja de Roupas Fashion",
			CNPJ:           "11.222.333/0001-44",
			CompanyName:    "Fashion Roupas LTDA",
			CEP:            "30000-000",
			Street:         "Rua da Moda",
			Neighborhood:   "Savassi",
			City:           "Belo Horizonte",
			State:          "MG",
			Number:         "789",
			Status:         entity.ClientStatusInactive,
			Phone:          "(31) 77777-7777",
			Email:          "contato@fashionroupas.com",
			ContactPerson:  "Ana Costa",
		},
	}

	for _, c := range clients {
		_, err = s.clients.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("seed client %s: %w", c.CNPJ, err)
		}
	}

	slog.InfoContext(ctx, "database seeded", "users", 2, "clients", len(clients))

	return nil
}
