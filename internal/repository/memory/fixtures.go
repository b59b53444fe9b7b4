package memory

import (
	"time"

	"github.com/medhq/hms-api/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func atSec(y int, m time.Month, d, hh, mm, ss int) *time.Time {
	t := time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
	return &t
}

func seedPatients() []model.Patient {
	return []model.Patient{
		{ID: "1", Name: "John Smith", Gender: "Male", Age: 45, Phone: "555-123-4567", Email: "john.smith@example.com", BloodType: "A+", LastVisit: day(2025, 3, 15)},
		{ID: "2", Name: "Emily Johnson", Gender: "Female", Age: 32, Phone: "555-234-5678", Email: "emily.johnson@example.com", BloodType: "O-", LastVisit: day(2025, 4, 2)},
		{ID: "3", Name: "Michael Brown", Gender: "Male", Age: 58, Phone: "555-345-6789", Email: "michael.brown@example.com", BloodType: "B+", LastVisit: day(2025, 3, 28)},
		{ID: "4", Name: "Sarah Davis", Gender: "Female", Age: 27, Phone: "555-456-7890", Email: "sarah.davis@example.com", BloodType: "AB+", LastVisit: day(2025, 4, 5)},
		{ID: "5", Name: "David Wilson", Gender: "Male", Age: 63, Phone: "555-567-8901", Email: "david.wilson@example.com", BloodType: "A-", LastVisit: day(2025, 3, 20)},
		{ID: "6", Name: "Jennifer Taylor", Gender: "Female", Age: 41, Phone: "555-678-9012", Email: "jennifer.taylor@example.com", BloodType: "O+", LastVisit: day(2025, 4, 1)},
		{ID: "7", Name: "Robert Martinez", Gender: "Male", Age: 52, Phone: "555-789-0123", Email: "robert.martinez@example.com", BloodType: "B-", LastVisit: day(2025, 3, 25)},
	}
}

func seedAppointments() []model.Appointment {
	return []model.Appointment{
		{ID: "1", PatientID: "1", PatientName: "John Smith", StartsAt: at(2025, 4, 10, 9, 0), DurationMin: 30, Type: "Check-up", Doctor: "Dr. Williams", Status: model.AppointmentStatusConfirmed},
		{ID: "2", PatientID: "2", PatientName: "Emily Johnson", StartsAt: at(2025, 4, 10, 10, 15), DurationMin: 45, Type: "Follow-up", Doctor: "Dr. Williams", Status: model.AppointmentStatusConfirmed},
		{ID: "3", PatientID: "5", PatientName: "David Wilson", StartsAt: at(2025, 4, 10, 11, 30), DurationMin: 30, Type: "Check-up", Doctor: "Dr. Williams", Status: model.AppointmentStatusConfirmed},
		{ID: "4", PatientID: "4", PatientName: "Sarah Davis", StartsAt: at(2025, 4, 10, 14, 0), DurationMin: 60, Type: "Consultation", Doctor: "Dr. Williams", Status: model.AppointmentStatusConfirmed},
		{ID: "5", PatientID: "3", PatientName: "Michael Brown", StartsAt: at(2025, 4, 11, 9, 30), DurationMin: 30, Type: "Check-up", Doctor: "Dr. Garcia", Status: model.AppointmentStatusConfirmed},
		{ID: "6", PatientID: "6", PatientName: "Jennifer Taylor", StartsAt: at(2025, 4, 11, 11, 0), DurationMin: 45, Type: "Follow-up", Doctor: "Dr. Garcia", Status: model.AppointmentStatusConfirmed},
		{ID: "7", PatientID: "7", PatientName: "Robert Martinez", StartsAt: at(2025, 4, 12, 10, 0), DurationMin: 30, Type: "Check-up", Doctor: "Dr. Chen", Status: model.AppointmentStatusConfirmed},
	}
}

func seedPrescriptions() []model.Prescription {
	return []model.Prescription{
		{ID: "1", PatientName: "John Doe", Doctor: "Dr. Smith", Medication: "Amoxicillin", Dosage: "500mg", Frequency: "3 times daily", Duration: "7 days", Status: model.PrescriptionStatusActive, IssuedOn: day(2025, 4, 5)},
		{ID: "2", PatientName: "Jane Smith", Doctor: "Dr. Johnson", Medication: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "30 days", Status: model.PrescriptionStatusActive, IssuedOn: day(2025, 4, 3)},
		{ID: "3", PatientName: "Robert Brown", Doctor: "Dr. Williams", Medication: "Metformin", Dosage: "850mg", Frequency: "Twice daily", Duration: "90 days", Status: model.PrescriptionStatusCompleted, IssuedOn: day(2025, 3, 20)},
		{ID: "4", PatientName: "Emily Davis", Doctor: "Dr. Garcia", Medication: "Atorvastatin", Dosage: "20mg", Frequency: "Once daily", Duration: "30 days", Status: model.PrescriptionStatusActive, IssuedOn: day(2025, 4, 1)},
		{ID: "5", PatientName: "Michael Wilson", Doctor: "Dr. Smith", Medication: "Albuterol", Dosage: "90mcg", Frequency: "As needed", Duration: "30 days", Status: model.PrescriptionStatusExpired, IssuedOn: day(2025, 2, 15)},
	}
}

func seedLabRequests() []model.LabRequest {
	return []model.LabRequest{
		{ID: "1", PatientName: "John Doe", Doctor: "Dr. Smith", TestName: "Complete Blood Count", Priority: model.LabPriorityRoutine, Status: model.LabStatusPending, RequestedOn: day(2025, 4, 5)},
		{ID: "2", PatientName: "Jane Smith", Doctor: "Dr. Johnson", TestName: "Lipid Panel", Priority: model.LabPriorityUrgent, Status: model.LabStatusCompleted, RequestedOn: day(2025, 4, 3)},
		{ID: "3", PatientName: "Robert Brown", Doctor: "Dr. Williams", TestName: "Urinalysis", Priority: model.LabPriorityRoutine, Status: model.LabStatusProcessing, RequestedOn: day(2025, 4, 6)},
		{ID: "4", PatientName: "Emily Davis", Doctor: "Dr. Garcia", TestName: "Liver Function Test", Priority: model.LabPrioritySTAT, Status: model.LabStatusPending, RequestedOn: day(2025, 4, 7)},
		{ID: "5", PatientName: "Michael Wilson", Doctor: "Dr. Smith", TestName: "Thyroid Panel", Priority: model.LabPriorityRoutine, Status: model.LabStatusCompleted, RequestedOn: day(2025, 4, 2)},
	}
}

func seedInvoices() []model.Invoice {
	return []model.Invoice{
		{ID: "INV-001", PatientName: "John Doe", Amount: 150.00, IssuedOn: day(2025, 4, 1), DueOn: day(2025, 4, 15), Status: model.InvoiceStatusPaid},
		{ID: "INV-002", PatientName: "Jane Smith", Amount: 375.50, IssuedOn: day(2025, 3, 28), DueOn: day(2025, 4, 11), Status: model.InvoiceStatusPending},
		{ID: "INV-003", PatientName: "Robert Brown", Amount: 220.00, IssuedOn: day(2025, 4, 2), DueOn: day(2025, 4, 16), Status: model.InvoiceStatusPending},
		{ID: "INV-004", PatientName: "Emily Davis", Amount: 95.75, IssuedOn: day(2025, 3, 25), DueOn: day(2025, 4, 8), Status: model.InvoiceStatusOverdue},
		{ID: "INV-005", PatientName: "Michael Wilson", Amount: 450.25, IssuedOn: day(2025, 3, 30), DueOn: day(2025, 4, 13), Status: model.InvoiceStatusPaid},
	}
}

func seedNotifications() []model.Notification {
	return []model.Notification{
		{ID: "1", Title: "New appointment scheduled", Message: "Appointment scheduled with John Doe at 2:00 PM tomorrow", Type: model.NotificationTypeAppointment, IsRead: false, SentAt: at(2025, 4, 10, 9, 15)},
		{ID: "2", Title: "Lab results ready", Message: "Lab results for patient Jane Smith are now available", Type: model.NotificationTypeLab, IsRead: false, SentAt: at(2025, 4, 9, 15, 45)},
		{ID: "3", Title: "Prescription renewal", Message: "Robert Brown requested a prescription renewal", Type: model.NotificationTypePrescription, IsRead: true, SentAt: at(2025, 4, 8, 11, 20)},
		{ID: "4", Title: "Emergency alert", Message: "Emergency room needs assistance immediately", Type: model.NotificationTypeAlert, IsRead: true, SentAt: at(2025, 4, 7, 20, 30)},
		{ID: "5", Title: "System maintenance", Message: "Scheduled system maintenance on April 15, 2025", Type: model.NotificationTypeSystem, IsRead: true, SentAt: at(2025, 4, 5, 14, 15)},
	}
}

func seedAttendance() []model.AttendanceRecord {
	return []model.AttendanceRecord{
		{ID: "1", EmployeeName: "John Smith", Role: "Doctor", Department: "Cardiology", Day: day(2025, 4, 10), CheckInTime: atSec(2025, 4, 10, 8, 5, 23), CheckOutTime: atSec(2025, 4, 10, 17, 12, 45), Status: model.AttendanceStatusPresent},
		{ID: "2", EmployeeName: "Sarah Johnson", Role: "Nurse", Department: "Pediatrics", Day: day(2025, 4, 10), CheckInTime: atSec(2025, 4, 10, 8, 32, 10), CheckOutTime: atSec(2025, 4, 10, 16, 45, 30), Status: model.AttendanceStatusPresent},
		{ID: "3", EmployeeName: "Michael Brown", Role: "Lab Technician", Department: "Laboratory", Day: day(2025, 4, 10), CheckInTime: atSec(2025, 4, 10, 9, 15, 0), CheckOutTime: atSec(2025, 4, 10, 18, 20, 15), Status: model.AttendanceStatusLate},
		{ID: "4", EmployeeName: "Emily Wilson", Role: "Receptionist", Department: "Administration", Day: day(2025, 4, 10), Status: model.AttendanceStatusAbsent},
		{ID: "5", EmployeeName: "Robert Garcia", Role: "Pharmacist", Department: "Pharmacy", Day: day(2025, 4, 10), CheckInTime: atSec(2025, 4, 10, 8, 0, 12), CheckOutTime: atSec(2025, 4, 10, 16, 5, 30), Status: model.AttendanceStatusPresent},
	}
}

func seedRoles() []model.StaffRole {
	return []model.StaffRole{
		{ID: "1", Name: "Administrator", Description: "Full system access", Permissions: []string{
			"manage_users", "manage_roles", "manage_settings", "view_audit_logs", "manage_billing",
		}},
		{ID: "2", Name: "Doctor", Description: "Medical staff with patient care responsibilities", Permissions: []string{
			"view_patients", "edit_patients", "manage_appointments", "write_prescriptions", "order_lab_tests",
		}},
		{ID: "3", Name: "Nurse", Description: "Clinical support staff", Permissions: []string{
			"view_patients", "record_vitals", "view_appointments", "view_prescriptions",
		}},
		{ID: "4", Name: "Receptionist", Description: "Front desk and administration staff", Permissions: []string{
			"view_patients", "manage_appointments", "manage_invoices",
		}},
	}
}

func seedAuditLogs() []model.AuditLog {
	return []model.AuditLog{
		{ID: "1", Timestamp: at(2025, 4, 10, 8, 5), User: "Admin User", UserRole: "admin", Action: "login", Resource: "auth", ResourceID: "1", Details: "Successful login", Status: model.AuditStatusSuccess, Category: model.AuditCategorySecurity, IPAddress: "192.168.1.10"},
		{ID: "2", Timestamp: at(2025, 4, 10, 8, 42), User: "Doctor User", UserRole: "doctor", Action: "update", Resource: "patient", ResourceID: "3", Details: "Updated patient contact details", Status: model.AuditStatusSuccess, Category: model.AuditCategoryUser, IPAddress: "192.168.1.22"},
		{ID: "3", Timestamp: at(2025, 4, 10, 9, 30), User: "Nurse User", UserRole: "nurse", Action: "create", Resource: "appointment", ResourceID: "7", Details: "Scheduled follow-up appointment", Status: model.AuditStatusSuccess, Category: model.AuditCategoryUser, IPAddress: "192.168.1.31"},
		{ID: "4", Timestamp: at(2025, 4, 10, 10, 12), User: "Admin User", UserRole: "admin", Action: "delete", Resource: "patient", ResourceID: "9", Details: "Attempted to delete missing record", Status: model.AuditStatusFailure, Category: model.AuditCategoryError, IPAddress: "192.168.1.10"},
		{ID: "5", Timestamp: at(2025, 4, 10, 11, 47), User: "System", UserRole: "system", Action: "backup", Resource: "system", ResourceID: "", Details: "Nightly backup completed with warnings", Status: model.AuditStatusWarning, Category: model.AuditCategorySystem, IPAddress: "127.0.0.1"},
	}
}

func seedSettings() model.Settings {
	return model.Settings{
		General: model.GeneralSettings{
			SystemName:   "HMS System",
			HospitalName: "City General Hospital",
			Address:      "123 Medical Center Blvd, City, State, 12345",
			Phone:        "+1 (555) 123-4567",
			Email:        "info@citygeneralhospital.org",
			Timezone:     "America/New_York",
			DateFormat:   "MM/DD/YYYY",
			TimeFormat:   "12h",
		},
		Notifications: model.NotificationSettings{
			EmailEnabled:         true,
			SMSEnabled:           false,
			AppointmentReminders: true,
			PatientPortal:        true,
		},
		Security: model.SecuritySettings{
			SessionTimeoutMinutes: 30,
			PasswordExpiryDays:    90,
			TwoFactorRequired:     false,
		},
	}
}
