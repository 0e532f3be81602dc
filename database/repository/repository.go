package repository

import (
	bookingRepo "grandstay/database/repository/booking"
	failureRepo "grandstay/database/repository/failure"
	memberRepo "grandstay/database/repository/member"
	orderRepo "grandstay/database/repository/order"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the FailureRepository interface and constructor.
type FailureRepository = failureRepo.FailureRepository

var NewMongoFailureRepo = failureRepo.NewMongoFailureRepo

// Re-export the OrderRepository interface and constructor.
type OrderRepository = orderRepo.OrderRepository

var NewMongoOrderRepo = orderRepo.NewMongoOrderRepo

// Re-export the MemberRepository interface and constructor.
type MemberRepository = memberRepo.MemberRepository

var NewMongoMemberRepo = memberRepo.NewMongoMemberRepo
