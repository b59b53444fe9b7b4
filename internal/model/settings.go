package model

// Settings groups the three configuration panels. Kept in memory like the
// rest of the data set.
type Settings struct {
	General       GeneralSettings      `json:"general"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
}

type GeneralSettings struct {
	SystemName      string `json:"system_name"`
	HospitalName    string `json:"hospital_name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Timezone        string `json:"timezone"`
	DateFormat      string `json:"date_format"`
	TimeFormat      string `json:"time_format"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}

type NotificationSettings struct {
	EmailEnabled         bool `json:"email_enabled"`
	SMSEnabled           bool `json:"sms_enabled"`
	AppointmentReminders bool `json:"appointment_reminders"`
	PatientPortal        bool `json:"patient_portal"`
}

type SecuritySettings struct {
	SessionTimeoutMinutes int  `json:"session_timeout_minutes"`
	PasswordExpiryDays    int  `json:"password_expiry_days"`
	TwoFactorRequired     bool `json:"two_factor_required"`
}

type UpdateGeneralSettingsRequest struct {
	SystemName      *string `json:"system_name"`
	HospitalName    *string `json:"hospital_name"`
	Address         *string `json:"address"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Timezone        *string `json:"timezone"`
	DateFormat      *string `json:"date_format"`
	TimeFormat      *string `json:"time_format" binding:"omitempty,oneof=12h 24h"`
	MaintenanceMode *bool   `json:"maintenance_mode"`
}

type UpdateNotificationSettingsRequest struct {
	EmailEnabled         *bool `json:"email_enabled"`
	SMSEnabled           *bool `json:"sms_enabled"`
	AppointmentReminders *bool `json:"appointment_reminders"`
	PatientPortal        *bool `json:"patient_portal"`
}

type UpdateSecuritySettingsRequest struct {
	SessionTimeoutMinutes *int  `json:"session_timeout_minutes" binding:"omitempty,gt=0"`
	PasswordExpiryDays    *int  `json:"password_expiry_days" binding:"omitempty,gte=0"`
	TwoFactorRequired     *bool `json:"two_factor_required"`
}

// DashboardStats is the landing view's headline numbers.
type DashboardStats struct {
	Patients            int     `json:"patients"`
	AppointmentsToday   int     `json:"appointments_today"`
	UnreadNotifications int     `json:"unread_notifications"`
	PendingInvoices     float64 `json:"pending_invoices"`
}
