package validators

import "go.mongodb.org/mongo-driver/bson"

// BookingValidator is the $jsonSchema applied to the Bookings
// collection. client_email is stored pre-normalized (lowercase).
func BookingValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "class_id", "client_name", "client_email", "booking_time"},
			"properties": bson.M{
				"_id": bson.M{
					"bsonType":    "string",
					"description": "booking UUID",
				},
				"class_id": bson.M{
					"bsonType": "int",
					"minimum":  1,
				},
				"client_name": bson.M{
					"bsonType":  "string",
					"minLength": 1,
					"maxLength": 100,
				},
				"client_email": bson.M{
					"bsonType":  "string",
					"maxLength": 120,
					"pattern":   "^[^A-Z]*$",
				},
				"booking_time": bson.M{
					"bsonType": "date",
				},
			},
		},
	}
}
