package utils

import "github.com/stretchr/testify/mock"

type MailerMock struct {
	mock.Mock
}

func (m *MailerMock) Send(to, subject, htmlBody string) error {
	return m.Called(to, subject, htmlBody).Error(0)
}
