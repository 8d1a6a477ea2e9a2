// SPDX-License-Identifier: MIT

// Package matrix: main (LU2RD) and anti (RU2LD) diagonal access.
// Every operation here requires a square matrix and fails with ErrNotSquare
// otherwise.

package matrix

import "fmt"

// checkSquare gates the diagonal family.
func (m *Matrix[T]) checkSquare() error {
	if m.rows != m.cols {
		return fmt.Errorf("shape %s: %w", m.Shape(), ErrNotSquare)
	}
	return nil
}

// GetLU2RD returns a copy of the main diagonal (cells with row == col),
// left-up to right-down.
func (m *Matrix[T]) GetLU2RD() ([]T, error) {
	if err := m.checkSquare(); err != nil {
		return nil, err
	}
	d := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		d[i] = m.data[i][i]
	}
	return d, nil
}

// SetLU2RD overwrites the main diagonal with d's leading elements.
// d must hold at least Rows() elements (ErrInvalidArgument).
func (m *Matrix[T]) SetLU2RD(d []T) error {
	if err := m.checkSquare(); err != nil {
		return err
	}
	if len(d) < m.rows {
		return fmt.Errorf("diagonal length %d, need %d: %w", len(d), m.rows, ErrInvalidArgument)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][i] = d[i]
	}
	return nil
}

// UpdateLU2RD applies fn to each main-diagonal cell in place.
func (m *Matrix[T]) UpdateLU2RD(fn func(T) T) error {
	if err := m.checkSquare(); err != nil {
		return err
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][i] = fn(m.data[i][i])
	}
	return nil
}

// GetRU2LD returns a copy of the anti-diagonal (cells with
// row + col == size-1), right-up to left-down.
func (m *Matrix[T]) GetRU2LD() ([]T, error) {
	if err := m.checkSquare(); err != nil {
		return nil, err
	}
	d := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		d[i] = m.data[i][m.cols-1-i]
	}
	return d, nil
}

// SetRU2LD overwrites the anti-diagonal with d's leading elements.
// d must hold at least Rows() elements (ErrInvalidArgument).
func (m *Matrix[T]) SetRU2LD(d []T) error {
	if err := m.checkSquare(); err != nil {
		return err
	}
	if len(d) < m.rows {
		return fmt.Errorf("diagonal length %d, need %d: %w", len(d), m.rows, ErrInvalidArgument)
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][m.cols-1-i] = d[i]
	}
	return nil
}

// UpdateRU2LD applies fn to each anti-diagonal cell in place.
func (m *Matrix[T]) UpdateRU2LD(fn func(T) T) error {
	if err := m.checkSquare(); err != nil {
		return err
	}
	for i := 0; i < m.rows; i++ {
		m.data[i][m.cols-1-i] = fn(m.data[i][m.cols-1-i])
	}
	return nil
}
