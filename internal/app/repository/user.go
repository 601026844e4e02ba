package repository

import (
	"gestaocon/internal/app/ds"
)

// Métodos para usuários

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByLogin(login string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("login = ?", login).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(login string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateUser(login, password, nome string, userRole int) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: password,
		Nome:     nome,
		Role:     userRole,
	}

	err := r.db.Create(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateUser(id uint, campos map[string]interface{}) error {
	result := r.db.Model(&ds.User{}).Where("id = ?", id).Updates(campos)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gormNotFound()
	}
	return nil
}
