// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Organize My Mind Authors

// Package graph defines the GraphQL schema of the user API and the resolvers
// behind it. The schema is a hand-written SDL string parsed once at process
// start; there is no generation step.
package graph

// Schema is the complete SDL of the exposed API.
//
// Field names are snake_case to stay wire-compatible with existing clients.
// The User type deliberately omits password_hash: the stored hash never
// leaves the service.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		findOneUser(id: ID!): User!
		findUsers: [User!]!
		me: User
	}

	type Mutation {
		register(input: CreateUserInput!): RegisterPayload!
		login(username: String!, password: String!): RegisterPayload!
		updateUser(id: ID!, input: UpdateUserInput!): User!
		removeUser(id: ID!): Boolean!
	}

	type User {
		id: ID!
		username: String!
		full_name: String!
		email: String!
	}

	type RegisterPayload {
		user: User!
		token: String!
	}

	input CreateUserInput {
		username: String!
		full_name: String!
		email: String!
		password_hash: String!
	}

	input UpdateUserInput {
		username: String
		full_name: String
		email: String
	}
`
